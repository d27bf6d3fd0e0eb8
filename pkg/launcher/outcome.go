// APK Launcher
// Copyright (c) 2025 The APK Launcher Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of APK Launcher.
//
// APK Launcher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// APK Launcher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with APK Launcher.  If not, see <http://www.gnu.org/licenses/>.

package launcher

import (
	"fmt"
)

// OutcomeKind classifies how a launch attempt ended.
type OutcomeKind int

const (
	// OutcomeSuccess means the game exited with code 0.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeNonZeroExit means the game ran and exited with a non-zero code.
	// It's reported to the user but isn't a launcher fault.
	OutcomeNonZeroExit
	// OutcomeExecutableNotFound means the executable doesn't exist.
	OutcomeExecutableNotFound
	// OutcomeLaunchFailed covers every other failure, including a missing
	// selection.
	OutcomeLaunchFailed
	// OutcomeTimedOut means the game was killed after the configured launch
	// timeout.
	OutcomeTimedOut
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeNonZeroExit:
		return "non_zero_exit"
	case OutcomeExecutableNotFound:
		return "executable_not_found"
	case OutcomeLaunchFailed:
		return "launch_failed"
	case OutcomeTimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

// Outcome is the result of one launch attempt. ExitCode is set for
// OutcomeNonZeroExit (-1 when the game was killed by a signal), Message
// carries the diagnostic for failures.
type Outcome struct {
	Message  string
	Kind     OutcomeKind
	ExitCode int
}

// Success reports whether the game ran and exited cleanly.
func (o Outcome) Success() bool {
	return o.Kind == OutcomeSuccess
}

// UserMessage renders the outcome the way it's shown to the user.
func (o Outcome) UserMessage() string {
	switch o.Kind {
	case OutcomeSuccess:
		return "Game exited normally."
	case OutcomeNonZeroExit:
		return fmt.Sprintf("Failed to run the command. Exit code: %d", o.ExitCode)
	case OutcomeExecutableNotFound:
		return o.Message + " not found."
	case OutcomeTimedOut:
		return "The game was stopped after " + o.Message + "."
	case OutcomeLaunchFailed:
		if o.Message == ErrNoSelection.Error() {
			return "Please select a folder."
		}
		return "Failed to run the command:\n" + o.Message
	default:
		return o.Message
	}
}

func successOutcome() Outcome {
	return Outcome{Kind: OutcomeSuccess}
}

func nonZeroExitOutcome(code int, msg string) Outcome {
	return Outcome{Kind: OutcomeNonZeroExit, ExitCode: code, Message: msg}
}

func notFoundOutcome(executable string) Outcome {
	return Outcome{Kind: OutcomeExecutableNotFound, Message: executable}
}

func launchFailedOutcome(msg string) Outcome {
	return Outcome{Kind: OutcomeLaunchFailed, Message: msg}
}
