// Package warn is the diagnostic sink for anomalies the parser
// tolerates rather than aborts on (§7: TruncatedBuffer, MissingPool,
// EncodingFailure): print and keep going, no structured logging
// library involved.
package warn

import (
	"fmt"
	"os"
)

// Sink receives formatted warning lines. Tests can swap it out to
// capture or silence diagnostics; production code leaves it at the
// default stderr writer.
var Sink = os.Stderr

// Warnf writes a warning line to Sink. It never returns an error and
// never panics: a diagnostic sink that can fail would defeat the
// point of "tolerant on read."
func Warnf(format string, args ...any) {
	fmt.Fprintf(Sink, "mbe: warning: "+format+"\n", args...)
}
