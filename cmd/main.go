package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"vending-machine/internal/api"
	"vending-machine/internal/coin"
	"vending-machine/internal/config"
	"vending-machine/internal/dispatch"
	"vending-machine/internal/journal"
	applog "vending-machine/internal/logger"
	"vending-machine/internal/machine"
	"vending-machine/pkg"
)

func main() {
	console := flag.Bool("console", false, "read commands from stdin instead of serving HTTP")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, _ := zap.NewProduction()
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(zapLogger)
	logger := pkg.NewZapLogger(zapLogger)

	var jr journal.Journal = journal.Nop{}
	if cfg.JournalEnabled() {
		dbConn, err := journal.Connect(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to journal database: %v", err)
		}
		defer dbConn.Close()
		journal.Migrate(dbConn, "migrations")
		jr = journal.NewPostgres(dbConn)
	}

	m := machine.New(logger, jr)
	fill(m)

	dispatcher := dispatch.New(m)

	if *console {
		runConsole(dispatcher)
		return
	}

	e := echo.New()
	e.Use(applog.RequestLogger(zapLogger))

	handlers := &api.Handlers{
		Machine:    m,
		Dispatcher: dispatcher,
		Logger:     logger,
		JWTSecret:  cfg.JWTSecret,
	}
	api.RegisterHandlers(e, handlers)

	port := fmt.Sprintf(":%s", cfg.ServerPort)
	logger.Info("Starting server", zap.String("port", cfg.ServerPort))
	if err := e.Start(port); err != nil {
		logger.Error("Failed to run server", zap.Error(err))
	}
}

// runConsole reads one command token per line until exit/quit or EOF.
func runConsole(dispatcher *dispatch.Dispatcher) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		token := strings.TrimSpace(scanner.Text())
		if token == "exit" || token == "quit" {
			return
		}
		if token != "" {
			for _, line := range dispatcher.Process(token) {
				fmt.Println(line)
			}
		}
		fmt.Print("> ")
	}
}

// fill seeds the machine the way an operator would on install.
func fill(m *machine.Machine) {
	_ = m.Restock("A", "cola", 150, 5)
	_ = m.Restock("B", "chips", 65, 5)
	_ = m.Restock("C", "candy", 95, 5)
	_ = m.AddStock(coin.Nickel, 10)
	_ = m.AddStock(coin.Dime, 10)
	_ = m.AddStock(coin.Quarter, 10)
	_ = m.AddStock(coin.Dollar, 5)
}
