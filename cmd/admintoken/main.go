// Command admintoken prints a bearer token for the admin API signed with
// the configured auth.jwt_secret.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/Onahi7/portfolio-sub000/internal/config"
	"github.com/Onahi7/portfolio-sub000/internal/middleware"
)

func main() {
	subject := flag.String("subject", "admin", "token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg := config.MustLoad()

	token, err := middleware.IssueAdminToken(cfg.Auth.JWTSecret, *subject, *ttl)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
}
