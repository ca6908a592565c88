package tui

import "github.com/javiermolinar/tzbuddy/internal/tui/view"

// modalWidth is the outer width of modal boxes; modalContentWidth leaves room
// for the border and padding.
const (
	modalWidth        = 72
	modalContentWidth = modalWidth - 4
)

// renderModal renders the current modal.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalInsight:
		return m.renderInsightModal()
	case ModalInit:
		return m.renderInitModal()
	default:
		return ""
	}
}

func (m Model) modalStyles() view.ModalStyles {
	return view.ModalStyles{
		Frame:        m.styles.ModalStyle,
		Header:       m.styles.ModalHeaderStyle,
		Title:        m.styles.ModalTitleStyle,
		Subtitle:     m.styles.ModalHintStyle,
		Body:         m.styles.ModalBodyStyle,
		Footer:       m.styles.ModalFooterStyle,
		Button:       m.styles.ModalButtonStyle,
		ActiveButton: m.styles.ModalButtonActiveStyle,
	}
}

// renderInsightModal renders the overlap summary and LLM insight.
func (m Model) renderInsightModal() string {
	vm := m.insightModalViewModel()
	return view.RenderModal(view.ModalFrame{
		Title:    "Team Overlap",
		Subtitle: m.browsing.Format("Mon Jan 2"),
		Body:     view.RenderInsightBody(vm.Lines, vm.Width, vm.Styles),
		Buttons:  view.InsightButtons(vm.CanCopy),
	}, m.modalStyles())
}

// renderInitModal renders the startup initialization modal.
func (m Model) renderInitModal() string {
	vm := m.initModalViewModel()
	return view.RenderModal(view.ModalFrame{
		Title:   "Initialize Tzbuddy",
		Body:    view.RenderInitBody(vm.Model, vm.Styles),
		Buttons: view.InitButtons(),
	}, m.modalStyles())
}
