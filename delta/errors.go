package delta

import "fmt"

// ArtifactWriteError indicates a failure while persisting one of the
// report artifacts. By the time it surfaces the console summary has
// already been printed; nothing is rolled back.
type ArtifactWriteError struct {
	// Artifact names the output that failed: "chart", "csv" or "json".
	Artifact string

	// Path the artifact was being written to.
	Path string

	Err error
}

func (e *ArtifactWriteError) Error() string {
	return fmt.Sprintf("failed to write %s artifact %s: %v", e.Artifact, e.Path, e.Err)
}

func (e *ArtifactWriteError) Unwrap() error {
	return e.Err
}
