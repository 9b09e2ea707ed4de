// termtris is a falling-block puzzle game for the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"termtris/config"
	"termtris/engine"
	"termtris/engine/tetris"
	"termtris/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagLevel       = flag.Int("level", 0, "Speed level (1-10)")
	flagSeed        = flag.Int64("seed", 0, "Random seed for the piece sequence (0 = random)")
	flagSpawnOffset = flag.Int("spawn-offset", -1, "Spawn column offset from the center (0 or 1)")
	flagQuickStart  = flag.Bool("play", false, "Start a game immediately")
	flagFocus       = flag.Bool("focus", false, "Start in focus mode (board only)")
	flagDebug       = flag.Bool("debug", false, "Write debug events to the log")
	flagVersion     = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardView
var gameFrame *tview.Flex
var gameHint *tview.TextView
var ticker *ui.Ticker
var cfg *config.Config
var logger *zap.Logger
var level int

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termtris %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err = cfg.NewLogger(*flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log: %s\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	logger.Info("termtris starting", zap.String("version", Version))

	quickStart := *flagQuickStart || *flagLevel > 0 || *flagSeed != 0 || *flagSpawnOffset >= 0 || *flagFocus

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ▟ termtris ")

	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewBoardView(cfg, gameHint)
	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticker = ui.NewTicker(func(f func()) {
		app.QueueUpdateDraw(f)
	}, func() {
		gameBoard.Tick()
	})
	gameBoard.OnGameEnd(func(linesCleared int) {
		ticker.Stop()
	})

	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft:
			gameBoard.Move(engine.Left)
		case tcell.KeyRight:
			gameBoard.Move(engine.Right)
		case tcell.KeyUp:
			gameBoard.Rotate(engine.CCW)
		case tcell.KeyDown:
			gameBoard.Rotate(engine.CW)
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.Move(engine.Left)
			case 'l':
				gameBoard.Move(engine.Right)
			case 'k', 'z':
				gameBoard.Rotate(engine.CCW)
			case 'j', 'x':
				gameBoard.Rotate(engine.CW)
			case 'd':
				gameBoard.SoftDrop()
			case ' ':
				gameBoard.HardDrop()
			case 'p':
				if gameBoard.TogglePause() {
					if ticker.Running() {
						ticker.Stop()
					} else {
						ticker.Start(ctx, config.LevelInterval(level))
					}
				}
			case 'r':
				if gameBoard.Restart() {
					ticker.Start(ctx, config.LevelInterval(level))
				}
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			case 'q':
				ticker.Stop()
				rootPage.SwitchToPage("setup")
			}
		}
		return nil
	})

	setupMenu := ui.NewSetupMenu(cfg.Game, config.LevelInterval,
		func(gameCfg engine.GameConfig) {
			startGame(ctx, gameCfg)
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
		func() {
			app.Stop()
		},
	)

	colorConfig := ui.NewColorConfig(cfg, (*config.Config).Save, func(err error) {
		gameBoard.SetConfig(cfg)
		if err != nil {
			logger.Warn("failed to save config", zap.Error(err))
			showError(fmt.Sprintf("Colors applied but not saved:\n%s", err))
		}
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.NextTarget()
			return nil
		}
		return event
	})

	rootPage.AddPage("setup", ui.CenteredSetupLayout(setupMenu), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame(ctx, buildGameConfigFromFlags())
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		logger.Error("application stopped", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ticker.Stop()
	logger.Info("termtris exiting")
}

// startGame creates an engine for the configuration, starts it and starts the ticker.
func startGame(ctx context.Context, gameCfg engine.GameConfig) {
	level = gameCfg.Level
	eng := tetris.NewEngine(gameCfg, tetris.WithLogger(logger.Named("engine")))
	gameBoard.ConnectEngine(eng, level)
	gameBoard.Start()
	ticker.Start(ctx, config.LevelInterval(level))
	rootPage.SwitchToPage("gameview")
}

// buildGameConfigFromFlags applies the command line on top of the config file.
func buildGameConfigFromFlags() engine.GameConfig {
	gameCfg := cfg.GameConfig()

	if *flagLevel >= config.MinLevel && *flagLevel <= config.MaxLevel {
		gameCfg.Level = *flagLevel
	}
	if *flagSeed != 0 {
		gameCfg.Seed = *flagSeed
	}
	if *flagSpawnOffset == 0 || *flagSpawnOffset == 1 {
		gameCfg.SpawnOffset = *flagSpawnOffset
	}

	return gameCfg
}

func showError(text string) {
	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			rootPage.RemovePage("error")
		})
	rootPage.AddPage("error", modal, true, true)
}
