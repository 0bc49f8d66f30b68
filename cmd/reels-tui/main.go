// reels-tui 在终端里运行老虎机
//
// 使用 tcell 绘制 3×3 转轮窗口，beep 播放合成音效。
// 配置直接从磁盘读取，需要在仓库根目录运行（或用参数指定路径）。
//
// 用法:
//
//	go run ./cmd/reels-tui [-seed 42] [-turbo] [-mute] [-verbose]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/config"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/systems"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

// frameInterval 约 60 FPS
const frameInterval = 16 * time.Millisecond

func main() {
	slotPath := flag.String("slot-config", config.SlotConfigPath, "老虎机参数文件")
	symbolsPath := flag.String("symbols", config.SymbolTablePath, "符号表文件")
	seed := flag.Uint64("seed", 0, "随机种子（0 表示使用当前时间）")
	turbo := flag.Bool("turbo", false, "以快速模式启动")
	mute := flag.Bool("mute", false, "关闭音效")
	verbose := flag.Bool("verbose", false, "把详细日志写入 reels-tui.log")
	flag.Parse()

	// 终端被 tcell 占用，日志只能写文件
	if *verbose {
		f, err := os.Create("reels-tui.log")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	machine, err := buildMachine(*slotPath, *symbolsPath, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	machine.SetTurbo(*turbo)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init screen: %v\n", err)
		os.Exit(1)
	}

	sound := newSoundBoard(!*mute)
	ui := newTUI(screen, machine, utils.NewSystemClock(), sound)
	defer ui.cleanup()

	ui.run()
}

// buildMachine 加载配置并创建老虎机
// 配置文件不存在时退回内置默认值
func buildMachine(slotPath, symbolsPath string, seed uint64) (*systems.SlotMachine, error) {
	slotCfg, err := config.LoadSlotConfig(slotPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[TUI] %s not found, using built-in slot config", slotPath)
		slotCfg, err = config.DefaultSlotConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	table, err := config.LoadSymbolTable(symbolsPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[TUI] %s not found, using built-in symbol table", symbolsPath)
		table, err = config.DefaultSymbolTable(), nil
	}
	if err != nil {
		return nil, err
	}

	s := utils.SeedOrTime(seed)
	log.Printf("[TUI] Random seed: %d", s)
	return systems.NewSlotMachine(slotCfg, table, utils.NewSeededRand(s))
}
