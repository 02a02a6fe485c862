// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

// Package digest is used to create fingerprints of the emulator's output. The
// Video type registers itself as a FrameRenderer with the LCD and hashes every
// frame it is sent.
//
// Fingerprints are chained. The hash of each frame includes the hash of the
// previous frame, so the final value covers the entire run. This is useful
// for regression testing, where the same ROM run for the same number of
// frames should always produce the same digest.
package digest

// Digest implementations compute a running hash of the emulation.
type Digest interface {
	Hash() string
	ResetDigest()
}
