package domain

type InteractionResult struct {
	Common []string
	Count  int
}

func (r InteractionResult) IsEmpty() bool {
	return r.Count == 0
}

// AggregateInteractions flags the interaction names listed by every scanned
// record. A record contributes at most one occurrence of each name, so a name
// is common exactly when its frequency equals the number of records.
func AggregateInteractions(records []MedicineRecord) InteractionResult {
	n := len(records)
	if n < 2 {
		return InteractionResult{}
	}

	frequency := make(map[string]int)
	order := make([]string, 0)
	for _, record := range records {
		seen := make(map[string]struct{}, len(record.Interactions))
		for _, name := range record.Interactions {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}

			if frequency[name] == 0 {
				order = append(order, name)
			}
			frequency[name]++
		}
	}

	common := make([]string, 0)
	for _, name := range order {
		if frequency[name] == n {
			common = append(common, name)
		}
	}

	if len(common) == 0 {
		return InteractionResult{}
	}

	return InteractionResult{Common: common, Count: len(common)}
}
