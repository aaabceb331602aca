package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"crystalis-cms/internal/api"
	"crystalis-cms/internal/config"
	"crystalis-cms/internal/session"
)

// CLI mínimo para operar el panel desde la terminal: restaura la sesión
// persistida, permite login/logout y lista las colecciones del sitio.
func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadClientConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	client := api.NewClient(cfg.APIBaseURL, logger)
	store := session.NewFileCredentialStore(cfg.CredentialsFile)
	manager := session.NewManager(client, store, logger)

	manager.Restore(ctx)
	printSession(manager.Current())

	for {
		fmt.Print("\n> login | logout | whoami | list <blogs|news|events|careers|partners|team|testimonials> | quit\n> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return
		case "whoami":
			printSession(manager.Current())
		case "login":
			fmt.Print("email: ")
			email, _ := reader.ReadString('\n')
			fmt.Print("password: ")
			password, _ := reader.ReadString('\n')
			user, err := manager.Login(ctx, strings.TrimSpace(email), strings.TrimSpace(password))
			if err != nil {
				fmt.Println("login failed:", err)
				continue
			}
			fmt.Printf("logged in as %s (%s)\n", user.Name, user.Role)
		case "logout":
			manager.Logout(ctx)
			fmt.Println("logged out")
		case "list":
			if len(fields) < 2 {
				fmt.Println("usage: list <collection>")
				continue
			}
			listCollection(ctx, client, fields[1])
		default:
			fmt.Println("unknown command")
		}
	}
}

func printSession(s session.Session) {
	if s.Authenticated {
		fmt.Printf("session: %s <%s>\n", s.User.Name, s.User.Email)
		return
	}
	fmt.Println("session: anonymous")
}

func listCollection(ctx context.Context, client *api.Client, name string) {
	raw, err := client.Fetch(ctx, name)
	if err != nil {
		fmt.Println("fetch failed:", err)
		return
	}
	var items []map[string]any
	if err := api.DecodeInto(raw, &items); err != nil {
		fmt.Println("decode failed:", err)
		return
	}
	if len(items) == 0 {
		fmt.Println("(empty)")
		return
	}
	for _, item := range items {
		line, _ := json.Marshal(item)
		fmt.Println(string(line))
	}
}
