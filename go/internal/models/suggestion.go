package models

// Suggestions is the remotely computed best-available split: the top few
// candidates plus the next band. Fully derived and disposable; the client
// never edits it, only replaces it wholesale.
type Suggestions struct {
	Top  []Player `json:"top"`
	Next []Player `json:"next"`
}
