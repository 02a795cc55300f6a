package main

type Mode int

const (
	ModeStartup Mode = iota
	ModeNormal
	ModeSelect
	ModeFloat
	ModeDimInput
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSaveArray FileOperation = iota
	FileOpSavePNG
	FileOpImportImage
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmNewCanvas
	ConfirmClearCanvas
)

const (
	historyCap     = 50
	minCanvasDim   = 1
	maxCanvasDim   = 512
	defaultWidth   = 128
	defaultHeight  = 64
	hexWrapDefault = 16 // bytes per line in formatted array text
)
