// Inferno Reels - 三转轮老虎机
//
// 桌面端和浏览器（GOOS=js GOARCH=wasm）共用此入口。
//
// 启动参数先读取环境变量（REELS_VERBOSE、REELS_SEED、REELS_TURBO ...），
// 命令行参数覆盖环境变量。
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/app"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/config"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable verbose logging")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = time based)")
	flag.BoolVar(&cfg.Turbo, "turbo", cfg.Turbo, "start in turbo spin mode")
	flag.StringVar(&cfg.SlotConfigPath, "slot-config", cfg.SlotConfigPath, "slot machine parameters file")
	flag.StringVar(&cfg.SymbolTablePath, "symbols", cfg.SymbolTablePath, "symbol table file")
	noEmbed := flag.Bool("no-embed", false, "read assets/ and data/ from the working directory")
	flag.Parse()

	// 默认使用嵌入资源；开发时可以直接读取磁盘文件
	if !*noEmbed {
		embedded.Init(assetsFS, dataFS)
	}

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Inferno Reels")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
