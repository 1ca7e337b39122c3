package domain

type CaptureState string

const (
	StateIdle       CaptureState = "idle"
	StateScanning   CaptureState = "scanning"
	StateProcessing CaptureState = "processing"
)
