package commands

import "github.com/de-tools/parking-atlas/pkg/models/domain"

// ReportHandler renders a report built by a command.
type ReportHandler interface {
	Handle(report *domain.Report) error
}
