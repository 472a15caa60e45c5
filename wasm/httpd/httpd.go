// The httpd command serves the www directory so that the WASM build can be
// tried in a browser.
package main

import (
	"flag"
	"log"
	"net/http"
	"strings"
)

type handler struct {
	fileHandler http.Handler
}

func newHandler(dir string) *handler {
	return &handler{
		fileHandler: http.FileServer(http.Dir(dir)),
	}
}

func (hnd *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("%s %s", r.Method, r.RequestURI)

	// browsers refuse to compile wasm served with the wrong content type
	if strings.HasSuffix(r.URL.Path, ".wasm") {
		w.Header().Set("Content-Type", "application/wasm")
	}
	hnd.fileHandler.ServeHTTP(w, r)
}

func main() {
	addr := flag.String("addr", "localhost:8088", "address to listen on")
	dir := flag.String("dir", "www", "directory to serve")
	flag.Parse()

	log.Printf("serving %s on %s", *dir, *addr)
	err := http.ListenAndServe(*addr, newHandler(*dir))
	if err != nil {
		log.Fatalln(err.Error())
	}
}
