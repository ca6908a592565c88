package tui

import "github.com/javiermolinar/tzbuddy/internal/tui/view"

type insightModalViewModel struct {
	Lines   []view.InsightLine
	Styles  view.InsightStyles
	Width   int
	CanCopy bool
}

func (m Model) insightLines() []view.InsightLine {
	return view.BuildInsightLines(view.InsightState{
		Day:     m.day,
		Insight: m.insight,
		Loading: m.insightLoading,
		Err:     m.insightErr,
	})
}

func (m Model) insightModalViewModel() insightModalViewModel {
	width := modalContentWidth
	if m.width > 0 && m.width-8 < width {
		width = max(20, m.width-8)
	}
	return insightModalViewModel{
		Lines:   m.insightLines(),
		Styles:  m.styles.InsightStyles(),
		Width:   width,
		CanCopy: !m.insightLoading && m.day != nil,
	}
}

type initModalViewModel struct {
	Model  view.InitModalModel
	Styles view.InitModalStyles
}

func (m Model) initModalViewModel() initModalViewModel {
	return initModalViewModel{
		Model: view.InitModalModel{
			ConfigPath:    m.initState.ConfigPath,
			DBPath:        m.initState.DBPath,
			ConfigMissing: m.initState.ConfigMissing,
			DBMissing:     m.initState.DBMissing,
			ErrorMessage:  m.initError,
		},
		Styles: view.InitModalStyles{
			BodyStyle:  m.styles.ModalBodyStyle,
			LabelStyle: m.styles.ModalLabelStyle,
			HintStyle:  m.styles.ModalHintStyle,
		},
	}
}
