package state

import (
	"strconv"

	"github.com/investlens/investlens/internal/domain"
)

// PipelineNotifier routes analysis-pipeline events into the notification log
// and the change stream.
type PipelineNotifier struct {
	App *App
}

func (p PipelineNotifier) FileProcessed(name string) {
	p.App.AddNotification(domain.NotifySuccess, "File Processed", name+" processed successfully.")
}

func (p PipelineNotifier) AnalysisComplete(filesProcessed int) {
	p.App.AddNotification(domain.NotifySuccess, "Analysis Complete",
		"Successfully analyzed "+strconv.Itoa(filesProcessed)+" files.")
	p.App.publish(Event{Topic: "analysis", Payload: map[string]int{"filesProcessed": filesProcessed}})
}
