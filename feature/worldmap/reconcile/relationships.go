package reconcile

import "ink-and-realm/feature/worldmap/models"

type pairKey struct {
	source int
	target int
}

// Reconciler maintains the single mutable relationship index for one
// edit batch. Upserts within a batch see edges created earlier in the
// same batch.
type Reconciler struct {
	m        *models.Map
	features *FeatureSet
	deleted  map[int]bool

	byPair map[pairKey]*models.Relationship
	byID   map[int]*models.Relationship

	added      []*models.Relationship
	updatedIDs map[int]bool
	deletedIDs map[int]bool
}

// NewReconciler indexes the map's loaded relationships. deletedTargetIDs
// is the union of every id the batch deletes; edges touching those ids
// are rejected by the validity gate.
func NewReconciler(m *models.Map, features *FeatureSet, deletedTargetIDs map[int]bool) *Reconciler {
	r := &Reconciler{
		m:          m,
		features:   features,
		deleted:    deletedTargetIDs,
		byPair:     make(map[pairKey]*models.Relationship, len(m.Relationships)),
		byID:       make(map[int]*models.Relationship, len(m.Relationships)),
		updatedIDs: make(map[int]bool),
		deletedIDs: make(map[int]bool),
	}
	for _, rel := range m.Relationships {
		r.byPair[pairKey{rel.SourceCharacterID, rel.TargetFeatureID}] = rel
		if rel.ID > 0 {
			r.byID[rel.ID] = rel
		}
	}
	return r
}

// valid applies the referential gate: the source must be a live Character,
// the target a live non-Title feature, and neither id may be scheduled
// for deletion in this batch. Failures are skips, not errors.
func (r *Reconciler) valid(sourceID, targetID int) bool {
	if r.deleted[sourceID] || r.deleted[targetID] {
		return false
	}
	if !r.features.IsCharacter(sourceID) {
		return false
	}
	target := r.features.Get(targetID)
	return target != nil && target.Kind != models.KindTitle
}

// Upsert merges an edge into the index. An existing (source, target) edge
// gains the union of type tags; its description changes only when the
// incoming one is non-empty and different. A new edge is created when the
// pair is unseen and passes the gate.
func (r *Reconciler) Upsert(sourceID, targetID int, types []string, description string) {
	if !r.valid(sourceID, targetID) {
		return
	}

	incoming := models.DedupeTypes(types)
	key := pairKey{sourceID, targetID}

	if existing, ok := r.byPair[key]; ok {
		merged := models.DedupeTypes(append(append([]string{}, existing.Types...), incoming...))
		changed := false
		if !models.SameTypeSet(existing.Types, merged) {
			existing.Types = merged
			changed = true
		}
		if description != "" && description != existing.Description {
			existing.Description = description
			changed = true
		}
		if changed && existing.ID > 0 {
			r.updatedIDs[existing.ID] = true
		}
		return
	}

	if len(incoming) == 0 {
		return
	}
	rel := &models.Relationship{
		SourceCharacterID: sourceID,
		TargetFeatureID:   targetID,
		Types:             incoming,
		Description:       description,
	}
	r.m.Relationships = append(r.m.Relationships, rel)
	r.byPair[key] = rel
	r.added = append(r.added, rel)
}

// Add performs the edit's upsert plus, when requested and the target is
// itself a Character, the reciprocal upsert with source and target
// swapped.
func (r *Reconciler) Add(edit models.RelationshipEdit) {
	r.Upsert(edit.SourceCharacterID, edit.TargetFeatureID, edit.Types, edit.Description)

	if !edit.CreateReciprocal || !r.features.IsCharacter(edit.TargetFeatureID) {
		return
	}
	types := edit.ReciprocalTypes
	if len(types) == 0 {
		types = edit.Types
	}
	description := edit.ReciprocalDescription
	if description == "" {
		description = edit.Description
	}
	r.Upsert(edit.TargetFeatureID, edit.SourceCharacterID, types, description)
}

// Update rewrites the tags and description of the stored edge with the
// edit's id. The edit must name the exact (source, target) pair already
// recorded; a mismatch, an unknown id, or an empty deduped tag list is a
// silent no-op.
func (r *Reconciler) Update(edit models.RelationshipEdit) {
	rel, ok := r.byID[edit.ID]
	if !ok {
		return
	}
	if rel.SourceCharacterID != edit.SourceCharacterID || rel.TargetFeatureID != edit.TargetFeatureID {
		return
	}
	if !r.valid(edit.SourceCharacterID, edit.TargetFeatureID) {
		return
	}
	types := models.DedupeTypes(edit.Types)
	if len(types) == 0 {
		return
	}

	changed := !models.SameTypeSet(rel.Types, types)
	rel.Types = types
	if edit.Description != rel.Description {
		rel.Description = edit.Description
		changed = true
	}
	if changed {
		r.updatedIDs[rel.ID] = true
	}
}

// Delete removes edges by id, restricted to edges whose endpoints both
// still resolve within this map.
func (r *Reconciler) Delete(ids []int) {
	for _, id := range ids {
		rel, ok := r.byID[id]
		if !ok {
			continue
		}
		if !r.features.IsCharacter(rel.SourceCharacterID) || r.features.Get(rel.TargetFeatureID) == nil {
			continue
		}
		r.remove(rel)
	}
}

// Cascade removes every edge whose source or target is among the feature
// ids deleted by this batch.
func (r *Reconciler) Cascade(removedFeatureIDs []int) {
	if len(removedFeatureIDs) == 0 {
		return
	}
	gone := make(map[int]bool, len(removedFeatureIDs))
	for _, id := range removedFeatureIDs {
		gone[id] = true
	}
	for _, rel := range append([]*models.Relationship{}, r.m.Relationships...) {
		if gone[rel.SourceCharacterID] || gone[rel.TargetFeatureID] {
			r.remove(rel)
		}
	}
}

func (r *Reconciler) remove(rel *models.Relationship) {
	delete(r.byPair, pairKey{rel.SourceCharacterID, rel.TargetFeatureID})
	if rel.ID > 0 {
		delete(r.byID, rel.ID)
		delete(r.updatedIDs, rel.ID)
		r.deletedIDs[rel.ID] = true
	} else {
		for i, a := range r.added {
			if a == rel {
				r.added = append(r.added[:i], r.added[i+1:]...)
				break
			}
		}
	}

	for i, m := range r.m.Relationships {
		if m == rel {
			r.m.Relationships = append(r.m.Relationships[:i], r.m.Relationships[i+1:]...)
			break
		}
	}
}

func (r *Reconciler) addedEdges() []*models.Relationship {
	return r.added
}

func (r *Reconciler) updatedEdgeIDs() []int {
	return sortedIDs(r.updatedIDs)
}

func (r *Reconciler) deletedEdgeIDs() []int {
	return sortedIDs(r.deletedIDs)
}
