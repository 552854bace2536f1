package reconcile

import "ink-and-realm/feature/worldmap/models"

// FeatureSet indexes one map's features by id for the duration of a
// single edit batch. Additions in the batch carry id 0 until persisted,
// so they are tracked in the map's slice but never in the id index.
type FeatureSet struct {
	m    *models.Map
	byID map[int]*models.Feature
}

// NewFeatureSet builds the id index over the loaded map.
func NewFeatureSet(m *models.Map) *FeatureSet {
	s := &FeatureSet{
		m:    m,
		byID: make(map[int]*models.Feature, len(m.Features)),
	}
	for _, f := range m.Features {
		if f.ID > 0 {
			s.byID[f.ID] = f
		}
	}
	return s
}

// Get returns the feature with the given id, or nil.
func (s *FeatureSet) Get(id int) *models.Feature {
	if id <= 0 {
		return nil
	}
	return s.byID[id]
}

// IsCharacter reports whether id resolves to a Character feature.
func (s *FeatureSet) IsCharacter(id int) bool {
	f := s.Get(id)
	return f != nil && f.Kind == models.KindCharacter
}

// IDs returns the set of persisted feature ids currently present.
func (s *FeatureSet) IDs() map[int]bool {
	ids := make(map[int]bool, len(s.byID))
	for id := range s.byID {
		ids[id] = true
	}
	return ids
}

// Add appends a new feature to the map. Persisted features (id > 0) also
// enter the index.
func (s *FeatureSet) Add(f *models.Feature) {
	s.m.Features = append(s.m.Features, f)
	if f.ID > 0 {
		s.byID[f.ID] = f
	}
}

// RemoveKind deletes the features among ids whose kind matches, returning
// the ids actually removed. Ids that resolve to a different kind, or to
// nothing, are skipped.
func (s *FeatureSet) RemoveKind(kind models.FeatureKind, ids []int) []int {
	removed := make(map[int]bool, len(ids))
	for _, id := range ids {
		f := s.Get(id)
		if f == nil || f.Kind != kind {
			continue
		}
		removed[id] = true
		delete(s.byID, id)
	}
	if len(removed) == 0 {
		return nil
	}

	kept := s.m.Features[:0]
	out := make([]int, 0, len(removed))
	for _, f := range s.m.Features {
		if removed[f.ID] {
			out = append(out, f.ID)
			continue
		}
		kept = append(kept, f)
	}
	s.m.Features = kept
	return out
}
