package scheduler

import "sort"

const (
	CronJobAnalysisReport = "analysis-report"
	CronJobAll            = "all"
)

// Job é o contrato comum dos jobs que podem ser disparados manualmente pela API
type Job interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// Registry associa o tipo exposto na API ao job correspondente
type Registry map[string]Job

func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
