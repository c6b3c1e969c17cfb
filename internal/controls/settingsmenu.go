package controls

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/vplayer/internal/chrome"
	"github.com/llehouerou/vplayer/internal/dom"
	"github.com/llehouerou/vplayer/internal/errmsg"
	"github.com/llehouerou/vplayer/internal/settings"
)

// restrictWidth is the wrapper width under which the menu height is
// restricted.
const restrictWidth = 600

// SettingsMenu binds the settings state machine to the menu element and
// applies the chosen values to the session.
type SettingsMenu struct {
	sess *Session
	log  logrus.FieldLogger
	btn  *dom.Element
	el   *dom.Element
	menu *settings.Menu

	onAutoplay func()
	onLanguage func(lang string) error
}

func newSettingsMenu(sess *Session, f *finder) *SettingsMenu {
	return &SettingsMenu{
		sess: sess,
		log:  sess.logger("settings"),
		btn:  f.find(chrome.ClassSettingsButton),
		el:   f.find(chrome.ClassSettingsMenu),
		menu: settings.NewMenu(sess.Config.Settings),
	}
}

// Button returns the settings button.
func (m *SettingsMenu) Button() *dom.Element { return m.btn }

// Element returns the menu element.
func (m *SettingsMenu) Element() *dom.Element { return m.el }

// Menu returns the state machine.
func (m *SettingsMenu) Menu() *settings.Menu { return m.menu }

// Rebuild merges the session values into a fresh schema copy and renders
// the main menu.
func (m *SettingsMenu) Rebuild() {
	cfg := m.sess.Config
	m.menu.Rebuild(cfg.Live(m.sess.Current().LanguageCodes()))
	m.render()
}

// Visible reports whether the menu is expanded.
func (m *SettingsMenu) Visible() bool {
	return m.btn.AttrOr("aria-expanded", "") == "true"
}

// ToggleView shows or hides the menu. Hiding returns it to the main menu.
func (m *SettingsMenu) ToggleView() {
	m.setVisible(!m.Visible())
}

func (m *SettingsMenu) setVisible(open bool) {
	m.menu.SetOpen(open)
	m.btn.SetAttr("aria-expanded", strconv.FormatBool(open))
	if open {
		m.el.RemoveAttr("aria-hidden")
	} else {
		m.el.SetAttr("aria-hidden", "true")
	}
	m.el.ToggleClass(chrome.StateMenuRestrict, m.sess.Wrapper.OffsetWidth() < restrictWidth)
	m.render()
}

// HandleClick applies a click on a menu row. Targets outside a row of the
// current menu, and disabled rows, are ignored.
func (m *SettingsMenu) HandleClick(target *dom.Element) {
	row := target.Closest(chrome.ClassMenuItem)
	if row == nil {
		row = target.Closest(chrome.ClassPanelHeader)
	}
	if row == nil || !m.el.Contains(row) {
		return
	}
	if row.AttrOr("aria-disabled", "") == "true" {
		return
	}

	act := m.menu.Activate(row.Data("attr"), row.Data("value"))
	m.log.WithFields(logrus.Fields{
		"action": act.Kind,
		"label":  act.Label,
		"value":  act.Value,
	}).Debug("settings row")

	switch act.Kind {
	case settings.ActionToggle:
		m.sess.Config.SetOption(act.Label, strconv.FormatBool(act.Checked))
		m.render()
		if act.Label == settings.LabelAutoplay && act.Checked && m.onAutoplay != nil {
			m.onAutoplay()
		}
	case settings.ActionOpen, settings.ActionBack:
		m.render()
	case settings.ActionSelect:
		m.sess.Config.SetOption(act.Label, act.Value)
		m.setVisible(false)
		m.apply(act.Label, act.Value)
	}
}

// apply runs the side effect of a chosen dropdown value.
func (m *SettingsMenu) apply(label, value string) {
	switch label {
	case settings.LabelSpeed:
		rate, err := strconv.ParseFloat(value, 64)
		if err != nil || rate <= 0 {
			return
		}
		m.sess.Media.SetPlaybackRate(rate)
	case settings.LabelLang:
		if m.onLanguage == nil {
			return
		}
		if err := m.onLanguage(value); err != nil {
			m.log.WithError(err).WithField("lang", value).Warn("language change failed")
			m.sess.report(errmsg.OpChangeLanguage, err)
		}
	}
}

func (m *SettingsMenu) render() {
	chrome.RenderSettings(m.el, m.menu.View())
}
