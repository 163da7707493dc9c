package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-coffee-list/models"
)

// RootModel is the program root:
// 1) handles global Ctrl+C quit
// 2) toggles the build info window
// 3) delegates everything else to the item screen
type RootModel struct {
	screen    screenModel
	buildInfo models.AppBuildInfo

	quitByUser    bool
	showBuildInfo bool
}

func newRootModel(screen screenModel, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		screen:    screen,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return r.screen.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, keys.forceQ) {
			r.quitByUser = true
			r.screen.shutdown()
			return r, tea.Quit
		}

		_, promptShown := r.screen.activePrompt()
		switch {
		case r.showBuildInfo:
			if key.Matches(keyMsg, keys.back, keys.version) {
				r.showBuildInfo = false
			}
			return r, nil
		case !promptShown && key.Matches(keyMsg, keys.version):
			r.showBuildInfo = true
			return r, nil
		case !promptShown && key.Matches(keyMsg, keys.quit):
			r.screen.shutdown()
			return r, tea.Quit
		}
	}

	var cmd tea.Cmd
	r.screen, cmd = r.screen.Update(msg)
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	return r.screen.View()
}
