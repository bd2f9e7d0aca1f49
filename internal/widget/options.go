package widget

import "selectgrip/internal/domain"

// FormatOptions reads the host's entries into option records, in order.
// Each record keeps a reference to the entry it came from.
func FormatOptions(host *domain.NativeSelect) []*domain.OptionRecord {
	records := make([]*domain.OptionRecord, 0, len(host.Options))
	for _, o := range host.Options {
		records = append(records, &domain.OptionRecord{
			Value:    o.Value,
			Label:    o.Label,
			Selected: o.Selected,
			Source:   o,
		})
	}
	return records
}
