// Command raytracer-server runs the single-shot HTTP render endpoint
// (web/server), adapted from the teacher's progressive-refinement
// web server to this renderer's one-request-one-image model.
package main

import (
	"flag"
	"os"

	"fortio.org/cli"
	"fortio.org/log"

	"github.com/feldrise/phong-raytracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "port to serve on")

	cli.MinArgs = 0
	cli.MaxArgs = 0
	cli.ArgsHelp = ""
	cli.Main()

	webServer := server.NewServer(*port)
	log.Infof("raytracer-server: visit http://localhost:%d/render to POST a scene", *port)

	if err := webServer.Start(); err != nil {
		log.Errf("raytracer-server: %v", err)
		os.Exit(1)
	}
}
