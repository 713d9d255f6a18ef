package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/perfdash/client"
)

const requestTimeout = 10 * time.Second

type objectivesMsg []client.Objective

type statsMsg *client.Stats

type contractMsg *client.Contract

type saveSettledMsg struct {
	err error
}

type deleteSettledMsg struct {
	err error
}

type progressSettledMsg struct {
	err error
}

type errMsg struct {
	err error
}

func (m *Model) loadObjectives() tea.Cmd {
	filters := m.tracker.Filters
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		objectives, err := m.client.ListObjectives(ctx, filters)
		if err != nil {
			return errMsg{err}
		}
		return objectivesMsg(objectives)
	}
}

func (m *Model) loadStats() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		stats, err := m.client.ObjectiveStats(ctx)
		if err != nil {
			return errMsg{err}
		}
		return statsMsg(stats)
	}
}

func (m *Model) loadContract() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		contract, err := m.client.GetContract(ctx)
		if err != nil {
			return errMsg{err}
		}
		return contractMsg(contract)
	}
}

func (m *Model) saveObjective(form client.ObjectiveForm) tea.Cmd {
	editingID := ""
	if m.tracker.IsEditing() {
		editingID = m.tracker.Editing.ID
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var err error
		if editingID != "" {
			_, err = m.client.UpdateObjective(ctx, editingID, form)
		} else {
			_, err = m.client.CreateObjective(ctx, form)
		}
		return saveSettledMsg{err}
	}
}

func (m *Model) saveProgress(id string, form client.ProgressForm) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		_, err := m.client.UpdateObjectiveProgress(ctx, id, form)
		return progressSettledMsg{err}
	}
}

func (m *Model) deleteObjective(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		err := m.client.DeleteObjective(ctx, id)
		return deleteSettledMsg{err}
	}
}
