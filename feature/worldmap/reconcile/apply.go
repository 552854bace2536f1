package reconcile

import (
	"sort"

	"ink-and-realm/core/geometry"
	"ink-and-realm/feature/worldmap/models"
)

// Changes records what one edit batch did to the in-memory map, in the
// shape the store needs to persist it in a single transaction.
type Changes struct {
	LayersReplaced bool

	AddedFeatures     []*models.Feature
	UpdatedFeatureIDs []int
	DeletedFeatureIDs []int

	AddedRelationships     []*models.Relationship
	UpdatedRelationshipIDs []int
	DeletedRelationshipIDs []int
}

// Dirty reports whether anything needs persisting.
func (c *Changes) Dirty() bool {
	return c.LayersReplaced ||
		len(c.AddedFeatures) > 0 ||
		len(c.UpdatedFeatureIDs) > 0 ||
		len(c.DeletedFeatureIDs) > 0 ||
		len(c.AddedRelationships) > 0 ||
		len(c.UpdatedRelationshipIDs) > 0 ||
		len(c.DeletedRelationshipIDs) > 0
}

// ApplyEdits runs one edit batch against the loaded map as a single
// linear pass: layers, feature additions, relationship edits, feature
// deletions (with title cascade), feature updates, relationship cascade.
// The map is mutated in place; the returned Changes drives persistence.
func ApplyEdits(m *models.Map, req *models.MapEditsRequest) *Changes {
	changes := &Changes{}
	features := NewFeatureSet(m)
	originalIDs := features.IDs()

	deletedTargetIDs := collectDeletedIDs(req)

	if req.AreaLayers != nil {
		m.Layers = dedupeLayers(req.AreaLayers)
		changes.LayersReplaced = true
	}

	for _, dto := range req.AddedTrees {
		addFeature(features, changes, treeFromDTO(dto))
	}
	for _, dto := range req.AddedHouses {
		addFeature(features, changes, houseFromDTO(dto))
	}
	for _, dto := range req.AddedCharacters {
		addFeature(features, changes, characterFromDTO(dto))
	}
	for _, dto := range req.AddedTitles {
		addFeature(features, changes, titleFromDTO(dto))
	}
	for _, dto := range req.AddedWaterPolygons {
		addFeature(features, changes, waterFromDTO(dto))
	}
	for _, dto := range req.AddedLandPolygons {
		addFeature(features, changes, landFromDTO(dto))
	}

	rels := NewReconciler(m, features, deletedTargetIDs)
	for _, edit := range req.AddedRelationships {
		rels.Add(edit)
	}
	for _, edit := range req.UpdatedRelationships {
		rels.Update(edit)
	}
	rels.Delete(req.DeletedRelationshipIDs)

	anchorRemoved := features.RemoveKind(models.KindTree, req.DeletedTreeIDs)
	anchorRemoved = append(anchorRemoved, features.RemoveKind(models.KindHouse, req.DeletedHouseIDs)...)

	removed := append([]int(nil), anchorRemoved...)
	removed = append(removed, features.RemoveKind(models.KindCharacter, req.DeletedCharacterIDs)...)
	removed = append(removed, features.RemoveKind(models.KindTitle, req.DeletedTitleIDs)...)
	removed = append(removed, features.RemoveKind(models.KindWater, req.DeletedWaterPolygonIDs)...)
	removed = append(removed, features.RemoveKind(models.KindLand, req.DeletedLandPolygonIDs)...)
	removed = append(removed, cascadeTitles(features, anchorRemoved)...)

	for _, dto := range req.UpdatedTrees {
		updateFeature(features, changes, dto.ID, models.KindTree, func(f *models.Feature) {
			f.Points = []geometry.Point{{X: dto.X, Y: dto.Y}}
			f.Tree.TreeType = models.NormalizeTreeType(dto.TreeType)
			f.Tree.Size = geometry.PointSize(dto.Size)
		})
	}
	for _, dto := range req.UpdatedHouses {
		updateFeature(features, changes, dto.ID, models.KindHouse, func(f *models.Feature) {
			f.Points = []geometry.Point{{X: dto.X, Y: dto.Y}}
			f.House.HouseType = models.NormalizeHouseType(dto.HouseType)
			f.House.Size = geometry.PointSize(dto.Size)
		})
	}
	for _, dto := range req.UpdatedCharacters {
		updateFeature(features, changes, dto.ID, models.KindCharacter, func(f *models.Feature) {
			f.Points = []geometry.Point{{X: dto.X, Y: dto.Y}}
			f.Character.CharacterType = models.NormalizeCharacterType(dto.CharacterType)
			f.Character.Name = geometry.CleanText(dto.Name, models.CharacterTextMaxLen)
			f.Character.Background = geometry.CleanText(dto.Background, models.CharacterTextMaxLen)
			f.Character.Occupation = geometry.CleanText(dto.Occupation, models.CharacterTextMaxLen)
			f.Character.Personality = geometry.CleanText(dto.Personality, models.CharacterTextMaxLen)
			f.Character.Size = geometry.PointSize(dto.Size)
		})
	}
	for _, dto := range req.UpdatedTitles {
		updateFeature(features, changes, dto.ID, models.KindTitle, func(f *models.Feature) {
			target := positiveID(dto.TargetFeatureID)
			// An anchored title keeps its own points as fallback geometry;
			// only free-floating titles take the incoming points.
			if target == 0 {
				f.Points = pointsFromDTO(dto.Points)
			}
			f.Title.Name = geometry.CleanTextDefault(dto.Name, models.TitleNameMaxLen, models.TitleNameDefault)
			f.Title.Description = geometry.CleanText(dto.Description, models.CharacterTextMaxLen)
			f.Title.Size = geometry.ClampSize(dto.Size, models.TitleSizeMin, models.TitleSizeMax)
			f.Title.TargetFeatureID = target
		})
	}
	for _, dto := range req.UpdatedWaterPolygons {
		updateFeature(features, changes, dto.ID, models.KindWater, func(f *models.Feature) {
			f.Points = pointsFromDTO(dto.Points)
			f.ZIndex = dto.LayerIndex
			f.Water.WaterType = models.NormalizeWaterType(dto.FeatureType)
		})
	}
	for _, dto := range req.UpdatedLandPolygons {
		updateFeature(features, changes, dto.ID, models.KindLand, func(f *models.Feature) {
			f.Points = pointsFromDTO(dto.Points)
			f.ZIndex = dto.LayerIndex
			f.Land.LandType = models.NormalizeLandType(dto.FeatureType)
			f.Land.ElevationType = models.NormalizeElevationType(dto.Elevation)
		})
	}

	cascade := make([]int, 0, len(removed))
	for _, id := range removed {
		if originalIDs[id] {
			cascade = append(cascade, id)
		}
	}
	rels.Cascade(cascade)

	changes.DeletedFeatureIDs = removed
	changes.AddedRelationships = rels.addedEdges()
	changes.UpdatedRelationshipIDs = rels.updatedEdgeIDs()
	changes.DeletedRelationshipIDs = rels.deletedEdgeIDs()
	sort.Ints(changes.UpdatedFeatureIDs)
	return changes
}

func addFeature(features *FeatureSet, changes *Changes, f *models.Feature) {
	features.Add(f)
	changes.AddedFeatures = append(changes.AddedFeatures, f)
}

func updateFeature(features *FeatureSet, changes *Changes, id int, kind models.FeatureKind, apply func(*models.Feature)) {
	f := features.Get(id)
	if f == nil || f.Kind != kind {
		return
	}
	apply(f)
	changes.UpdatedFeatureIDs = append(changes.UpdatedFeatureIDs, id)
}

// cascadeTitles removes titles anchored to a deleted tree or house.
func cascadeTitles(features *FeatureSet, removed []int) []int {
	anchors := make(map[int]bool)
	for _, id := range removed {
		anchors[id] = true
	}
	var ids []int
	for _, f := range features.m.Features {
		if f.Kind == models.KindTitle && f.Title.TargetFeatureID > 0 && anchors[f.Title.TargetFeatureID] {
			ids = append(ids, f.ID)
		}
	}
	return features.RemoveKind(models.KindTitle, ids)
}

// collectDeletedIDs unions every deletion list in the request, relationship
// ids included, skipping ids that signal "not yet persisted."
func collectDeletedIDs(req *models.MapEditsRequest) map[int]bool {
	out := make(map[int]bool)
	for _, list := range [][]int{
		req.DeletedTreeIDs,
		req.DeletedHouseIDs,
		req.DeletedCharacterIDs,
		req.DeletedTitleIDs,
		req.DeletedWaterPolygonIDs,
		req.DeletedLandPolygonIDs,
		req.DeletedRelationshipIDs,
	} {
		for _, id := range list {
			if id > 0 {
				out[id] = true
			}
		}
	}
	return out
}

// dedupeLayers keeps the first layer seen per index and orders the result
// by index.
func dedupeLayers(layers []models.AreaLayerDTO) []models.Layer {
	seen := make(map[int]bool, len(layers))
	out := make([]models.Layer, 0, len(layers))
	for _, l := range layers {
		if seen[l.LayerIndex] {
			continue
		}
		seen[l.LayerIndex] = true
		out = append(out, models.Layer{
			LayerKey:    l.LayerKey,
			LayerIndex:  l.LayerIndex,
			FeatureType: l.FeatureType,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].LayerIndex < out[j].LayerIndex })
	return out
}

func treeFromDTO(dto models.TreeDTO) *models.Feature {
	return &models.Feature{
		Kind:   models.KindTree,
		Points: []geometry.Point{{X: dto.X, Y: dto.Y}},
		Tree: &models.TreeDetail{
			TreeType: models.NormalizeTreeType(dto.TreeType),
			Size:     geometry.PointSize(dto.Size),
		},
	}
}

func houseFromDTO(dto models.HouseDTO) *models.Feature {
	return &models.Feature{
		Kind:   models.KindHouse,
		Points: []geometry.Point{{X: dto.X, Y: dto.Y}},
		House: &models.HouseDetail{
			HouseType: models.NormalizeHouseType(dto.HouseType),
			Size:      geometry.PointSize(dto.Size),
		},
	}
}

func characterFromDTO(dto models.CharacterDTO) *models.Feature {
	return &models.Feature{
		Kind:   models.KindCharacter,
		Points: []geometry.Point{{X: dto.X, Y: dto.Y}},
		Character: &models.CharacterDetail{
			CharacterType: models.NormalizeCharacterType(dto.CharacterType),
			Name:          geometry.CleanText(dto.Name, models.CharacterTextMaxLen),
			Background:    geometry.CleanText(dto.Background, models.CharacterTextMaxLen),
			Occupation:    geometry.CleanText(dto.Occupation, models.CharacterTextMaxLen),
			Personality:   geometry.CleanText(dto.Personality, models.CharacterTextMaxLen),
			Size:          geometry.PointSize(dto.Size),
		},
	}
}

func titleFromDTO(dto models.TitleDTO) *models.Feature {
	return &models.Feature{
		Kind:   models.KindTitle,
		Points: pointsFromDTO(dto.Points),
		Title: &models.TitleDetail{
			Name:            geometry.CleanTextDefault(dto.Name, models.TitleNameMaxLen, models.TitleNameDefault),
			Description:     geometry.CleanText(dto.Description, models.CharacterTextMaxLen),
			Size:            geometry.ClampSize(dto.Size, models.TitleSizeMin, models.TitleSizeMax),
			TargetFeatureID: positiveID(dto.TargetFeatureID),
		},
	}
}

func waterFromDTO(dto models.AreaPolygonDTO) *models.Feature {
	return &models.Feature{
		Kind:   models.KindWater,
		ZIndex: dto.LayerIndex,
		Points: pointsFromDTO(dto.Points),
		Water: &models.WaterDetail{
			WaterType: models.NormalizeWaterType(dto.FeatureType),
		},
	}
}

func landFromDTO(dto models.AreaPolygonDTO) *models.Feature {
	return &models.Feature{
		Kind:   models.KindLand,
		ZIndex: dto.LayerIndex,
		Points: pointsFromDTO(dto.Points),
		Land: &models.LandDetail{
			LandType:      models.NormalizeLandType(dto.FeatureType),
			ElevationType: models.NormalizeElevationType(dto.Elevation),
		},
	}
}

func pointsFromDTO(points []models.PointDTO) []geometry.Point {
	out := make([]geometry.Point, 0, len(points))
	for _, p := range points {
		out = append(out, geometry.Point{X: p.X, Y: p.Y})
	}
	return out
}

func positiveID(id int) int {
	if id < 0 {
		return 0
	}
	return id
}

func sortedIDs(set map[int]bool) []int {
	if len(set) == 0 {
		return nil
	}
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
