package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/satchelhq/satchel/pkg/config"
	"github.com/satchelhq/satchel/pkg/db"
	"github.com/satchelhq/satchel/pkg/server"
	"github.com/satchelhq/satchel/pkg/server/endpoints"
	storegorm "github.com/satchelhq/satchel/pkg/server/store/gorm"
	"github.com/satchelhq/satchel/pkg/token"
)

func defaultBindAddress() string {
	if addr := os.Getenv("SATCHEL_BIND_ADDRESS"); addr != "" {
		return addr
	}
	return config.Get().BindAddress
}

func defaultPort() string {
	if port := os.Getenv("SATCHEL_PORT"); port != "" {
		return port
	}
	return strconv.Itoa(config.Get().Port)
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the Satchel application server",
	Long: `Run the Satchel application server.

To run the server requires the environment variables SATCHEL_TOKEN_KEY and
DATABASE_URL.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Validate required environment variables first (fail fast). The
		// token signing key is a process configuration concern, never a
		// per-request one.
		tokenKey := config.TokenKey()
		if len(tokenKey) == 0 {
			fmt.Fprintln(os.Stderr, "SATCHEL_TOKEN_KEY environment variable is required")
			os.Exit(1)
		}

		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to load configuration:", err)
			os.Exit(1)
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, "Invalid configuration:", err)
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		minter, err := token.NewMinter(tokenKey, cfg.AccessTokenTTL())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to create token minter:", err)
			os.Exit(1)
		}

		// Explicit composition: each component gets its dependencies
		// passed directly, no service locator.
		refreshTokens := storegorm.NewRefreshTokensStore(database)
		issuer := token.NewIssuer(minter, refreshTokens, cfg.RefreshTokenTTL())

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(minter, issuer, database, cfg, host, port)
		s.Users = storegorm.NewUsersStore(database)
		s.RefreshTokens = refreshTokens
		s.Inventory = storegorm.NewInventoryStore(database)
		s.Health = storegorm.NewHealthStore(database)

		endpoints.RegisterAll(s)

		// Reload configuration when satchel.yml changes.
		stop := make(chan struct{})
		defer close(stop)
		go func() {
			if err := config.Watch(stop); err != nil {
				log.Printf("Config watch stopped: %v", err)
			}
		}()

		log.Printf("Running server at http://%s:%s...\n", host, port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
