package service

import "sort"

// Reconciliation classifies external ids relative to persisted state.
type Reconciliation struct {
	New         []int64 // present in the API snapshot, absent in the DB
	Deactivated []int64 // present in the DB, absent in the API snapshot
	Unchanged   int
}

// Reconcile computes the set difference between a complete API snapshot of
// external ids and the ids persisted for the same source.
//
// Precondition: apiIDs must come from an exhaustive crawl of the upstream
// source. Reconciling a partial window would classify every unreached
// record as deactivated. Callers enforce this via Snapshot.Complete.
//
// Invariant: Unchanged + len(Deactivated) == number of distinct dbIDs.
func Reconcile(apiIDs, dbIDs []int64) Reconciliation {
	apiSet := toSet(apiIDs)
	dbSet := toSet(dbIDs)

	rec := Reconciliation{}

	for id := range apiSet {
		if _, ok := dbSet[id]; !ok {
			rec.New = append(rec.New, id)
		}
	}
	for id := range dbSet {
		if _, ok := apiSet[id]; !ok {
			rec.Deactivated = append(rec.Deactivated, id)
		}
	}
	rec.Unchanged = len(dbSet) - len(rec.Deactivated)

	sort.Slice(rec.New, func(i, j int) bool { return rec.New[i] < rec.New[j] })
	sort.Slice(rec.Deactivated, func(i, j int) bool { return rec.Deactivated[i] < rec.Deactivated[j] })

	return rec
}

func toSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
