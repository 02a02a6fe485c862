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

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address of the statistics server.
const Address = "localhost:12680"

const url = "/debug/statsview"

// the interval in milliseconds at which the graphs are updated
const interval = 1000

// Server is a running statistics server.
type Server struct {
	mgr *statsview.ViewManager
}

// Launch a new goroutine running the statsview. The address of the statistics
// page is written to output.
func Launch(output io.Writer) *Server {
	viewer.SetConfiguration(viewer.WithAddr(Address), viewer.WithInterval(interval))
	srv := &Server{mgr: statsview.New()}
	go srv.mgr.Start()

	fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
	return srv
}

// Stop the statistics server.
func (srv *Server) Stop() {
	srv.mgr.Stop()
}
