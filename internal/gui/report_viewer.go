// Package gui はGUIを提供します
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Default window size constants
const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
)

// ReportViewer は、生成されたレポート文字列をウィンドウに表示する構造体
type ReportViewer struct {
	title string
}

// NewReportViewer は、ReportViewerの新しいインスタンスを作成します
func NewReportViewer(title string) *ReportViewer {
	return &ReportViewer{title: title}
}

// Show は、レポートを等幅フォントで表示し、ウィンドウが閉じられるまでブロックします
func (v *ReportViewer) Show(report string) {
	a := app.New()
	w := a.NewWindow(v.title)
	w.Resize(fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight))

	text := widget.NewLabel(report)
	text.TextStyle = fyne.TextStyle{Monospace: true}

	w.SetContent(container.NewScroll(text))
	w.ShowAndRun()
}
