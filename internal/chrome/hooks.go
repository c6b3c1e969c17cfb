package chrome

// Layout hooks.
const (
	ClassWrapper        = "vplayer-wrapper"
	ClassContainer      = "vplayer-container"
	ClassStream         = "vplayer-stream"
	ClassTrack          = "vplayer-track"
	ClassTrackDefault   = "vplayer-track--default"
	ClassGradientTop    = "vplayer-gradient-top"
	ClassGradientBottom = "vplayer-gradient-bottom"
	ClassTopLayer       = "vplayer-top-layer"
	ClassTitleText      = "vplayer-title-text"
	ClassTitleLink      = "vplayer-title-link"
	ClassBottomLayer    = "vplayer-bottom-layer"
	ClassControls       = "vplayer-controls"
	ClassControlsLeft   = "vplayer-controls-left"
	ClassControlsRight  = "vplayer-controls-right"
)

// Progress bar hooks.
const (
	ClassProgressWrapper   = "vplayer-progress-bar-wrapper"
	ClassProgressBar       = "vplayer-progress-bar"
	ClassPlayProgress      = "vplayer-play-progress"
	ClassLoadProgress      = "vplayer-load-progress"
	ClassScrubberContainer = "vplayer-scrubber-container"
	ClassScrubberButton    = "vplayer-scrubber-button"
)

// Buttons.
const (
	ClassButton           = "vplayer-btn"
	ClassPlayButton       = "vplayer-btn--play"
	ClassPrevButton       = "vplayer-btn--prev"
	ClassNextButton       = "vplayer-btn--next"
	ClassVolumeButton     = "vplayer-btn--volume"
	ClassFullscreenButton = "vplayer-btn--fullscreen"
	ClassCaptionButton    = "vplayer-btn--subtitles"
	ClassSettingsButton   = "vplayer-btn--settings"
	ClassBookmarkButton   = "vplayer-btn--bookmarks"
	ClassPlaylistButton   = "vplayer-btn--cards"
)

// Volume hooks.
const (
	ClassVolumeWrapper = "vplayer-volume-btn-wrapper"
	ClassVolumePanel   = "vplayer-volume-panel"
	ClassVolumeInput   = "vplayer-volume-input"
	ClassVolumeSlider  = "vplayer-volume-slider"
	ClassVolumeHandle  = "vplayer-volume-slider-handle"
)

// Time display, settings menu, captions.
const (
	ClassTimeDisplay   = "vplayer-time-display"
	ClassTimeCurrent   = "vplayer-time-current"
	ClassTimeDuration  = "vplayer-time-duration"
	ClassSettingsMenu  = "vplayer-settings-menu"
	ClassMenuItem      = "vplayer-menu-item"
	ClassMenuLabel     = "vplayer-menu-item-label"
	ClassMenuContent   = "vplayer-menu-item-content"
	ClassPanelHeader   = "vplayer-panel-header"
	ClassPanelTitle    = "vplayer-panel-title"
	ClassCaptionWindow = "caption-window"
	ClassCaptionBlock  = "caption-block"
)

// Tooltip hooks.
const (
	ClassTooltip         = "vplayer-tooltip-wrapper"
	ClassTooltipImage    = "vplayer-tooltip-bg-image"
	ClassTooltipDuration = "vplayer-tooltip-bg-duration"
	ClassTooltipInfo     = "vplayer-tooltip-info-wrapper"
	ClassTooltipText     = "vplayer-tooltip-info-text"
	ClassTooltipTitle    = "vplayer-tooltip-info-title"
)

// Playlist drawer hooks.
const (
	ClassDrawer       = "vplayer-drawer"
	ClassDrawerHeader = "vplayer-drawer-header"
	ClassDrawerTitle  = "vplayer-drawer-header-text"
	ClassDrawerClose  = "vplayer-drawer-btn--close"
	ClassDrawerBody   = "vplayer-drawer-content"
	ClassCard         = "vplayer-card"
	ClassCardClick    = "vplayer-card-click"
	ClassCardTitle    = "vplayer-card-title"
	ClassCardMeta     = "vplayer-card-meta"
)

// State classes toggled at runtime.
const (
	StateDisabled        = "vplayer-btn--disabled"
	StateHidden          = "vplayer-btn--hide"
	StatePaused          = "video-paused"
	StatePlaylistOpen    = "playlist-open"
	StateShowInfo        = "show-info-controls"
	StateFullscreen      = "fs-mode"
	StateModalFullscreen = "vplayer-modal--fs-mode"
	StateVolumeActive    = "vplayer-volume-slider-active"
	StateVolumeHover     = "vplayer-volume-control-hover"
	StateMenuRestrict    = "vplayer-settings-menu--restrict"
	StateDrawerOpen      = "vplayer-drawer--open"
	StateCardPlaying     = "vplayer-card--playing"
	StateTooltipPreview  = "vplayer-tooltip-wrapper--preview"
	StateTooltipText     = "vplayer-tooltip-text"
	StateTooltipDuration = "vplayer-tooltip-has-duration"
)

// Data attributes of interactive rows and cards.
const (
	AttrIcon       = "data-icon"
	AttrAttr       = "data-attr"
	AttrParentAttr = "data-parent-attr"
	AttrValue      = "data-value"
	AttrVideoID    = "data-video-id"
	AttrParentID   = "data-video-parent-id"
)
