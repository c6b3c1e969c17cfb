package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vplayer/internal/playback"
)

// PlaybackMsg reports a playback state change from the machine's
// subscription.
type PlaybackMsg playback.StateChange

// WatchPlayback waits for the next state change. It returns nil once the
// subscription is closed.
func WatchPlayback(sub *playback.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return PlaybackMsg(e)
		case <-sub.Done:
			return nil
		}
	}
}
