package domain

// Snapshot é uma cópia imutável do estado do record store em um instante
type Snapshot struct {
	Version  uint64                   `json:"version"`
	Drops    []*Drop                  `json:"drops"`
	Expenses map[string]ExpensePeriod `json:"expenses"`
}

func (s *Snapshot) FindDrop(dropID string) *Drop {
	if s == nil {
		return nil
	}
	for _, drop := range s.Drops {
		if drop.ID == dropID {
			return drop
		}
	}
	return nil
}

func (s *Snapshot) Clone() *Snapshot {
	clone := &Snapshot{
		Version:  s.Version,
		Drops:    make([]*Drop, 0, len(s.Drops)),
		Expenses: make(map[string]ExpensePeriod, len(s.Expenses)),
	}
	for _, drop := range s.Drops {
		clone.Drops = append(clone.Drops, drop.Clone())
	}
	for period, expenses := range s.Expenses {
		clone.Expenses[period] = expenses
	}
	return clone
}
