// Package robocopy drives the external copy utility as a child process.
package robocopy

import (
	"fmt"

	"robosync/internal/app"
)

// baseFlags are shared by the analysis and the live transfer. Progress output
// is off, and the job header, job summary and directory lines are dropped
// from the log so that each remaining line is one file with one byte size.
var baseFlags = []string{
	"/E",     // recurse, including empty directories
	"/XJ",    // skip junction and reparse points
	"/NP",    // no per-file progress percentage
	"/BYTES", // sizes as exact byte counts
	"/R:1",
	"/W:0",
	"/NDL",
	"/NJH",
	"/NJS",
}

// Args builds the command line for one invocation.
func Args(inv app.Invocation) []string {
	args := make([]string, 0, len(baseFlags)+5)
	args = append(args, inv.Source, inv.Destination)
	args = append(args, baseFlags...)
	if inv.ListOnly {
		args = append(args, "/L")
	}
	if inv.InterPacketDelayMs > 0 {
		args = append(args, fmt.Sprintf("/IPG:%d", inv.InterPacketDelayMs))
	}
	return append(args, "/LOG:"+inv.LogPath)
}
