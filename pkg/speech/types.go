package speech

// TranscribeRequest describes one dictation clip.
type TranscribeRequest struct {
	AudioContent    string // base64-encoded audio bytes
	Encoding        string // e.g. "LINEAR16", "OGG_OPUS"
	SampleRateHertz int64
	LanguageCode    string // BCP-47, defaults to "en-US"
}
