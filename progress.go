package manualgen

// Build stage names reported through BuildProgressFunc.
const (
	StageDiscover = "discover"
	StageRender   = "render"
	StageAssemble = "assemble"
	StageWrite    = "write"
	StageVerify   = "verify"
)

// BuildProgress reports progress during a manual build.
type BuildProgress struct {
	// Stage is one of the Stage constants.
	Stage string

	// Detail names the file being processed, when applicable.
	Detail string

	// Completed and Total track per-document progress during the render
	// stage and the document count at the end of discovery.
	Completed int
	Total     int
}

// BuildProgressFunc is called as build stages complete.
type BuildProgressFunc func(BuildProgress)
