// Command droptoken issues bearer tokens for the dropshop API.
//
//	droptoken -user 42 -role ADMIN
//	droptoken -newkey
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MikeRez0/dropshop/internal/adapter/auth"
	"github.com/MikeRez0/dropshop/internal/adapter/config"
	"github.com/MikeRez0/dropshop/internal/core/domain"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	var token config.Token
	var userID int64
	var role string
	var newKey bool

	flag.StringVar(&token.KeyHex, "k", "", "Token key (hex), defaults to TOKEN_KEY")
	flag.DurationVar(&token.TTL, "ttl", 24*time.Hour, "Token lifetime")
	flag.Int64Var(&userID, "user", 0, "User id")
	flag.StringVar(&role, "role", string(domain.RoleUser), "USER / ADMIN")
	flag.BoolVar(&newKey, "newkey", false, "Print a fresh key and exit")
	flag.Parse()

	if err := env.Parse(&token); err != nil {
		fmt.Fprintf(os.Stderr, "error parsing token config: %s\n", err)
		os.Exit(1)
	}

	if newKey {
		ts, err := auth.New(&config.Token{})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(ts.KeyHex())
		return
	}

	if token.KeyHex == "" || userID <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	ts, err := auth.New(&token)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	r := domain.Role(strings.ToUpper(role))
	if r != domain.RoleUser && r != domain.RoleAdmin {
		fmt.Fprintf(os.Stderr, "unknown role %q\n", role)
		os.Exit(2)
	}

	s, err := ts.CreateToken(&domain.User{ID: userID, Role: r})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(s)
}
