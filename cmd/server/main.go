package main

import (
	"log"
	"net/http"

	"github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/internal/server"
)

func main() {
	opts := server.OptionsFromEnv()
	opts.Logger = log.Default()

	handler, err := server.NewHandler(opts)
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	addr := server.Addr()
	log.Printf("guild tracker listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
