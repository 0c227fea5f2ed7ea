package project

import (
	"time"
)

type ProjectStatus string

const (
	StatusActive    ProjectStatus = "active"
	StatusOnHold    ProjectStatus = "on_hold"
	StatusFinished  ProjectStatus = "finished"
	StatusCancelled ProjectStatus = "cancelled"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusOnHold, StatusFinished, StatusCancelled:
		return true
	}
	return false
}

type Project struct {
	ID        int
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Color     string
	Status    ProjectStatus
}
