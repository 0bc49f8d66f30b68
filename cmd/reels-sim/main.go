// reels-sim 无界面模拟器
//
// 用固定步长的手动时钟驱动老虎机，连续旋转 N 次后输出命中统计。
// 时间轴与真实帧循环完全一致，可用于检查配置改动对节奏和命中率的影响。
//
// 用法:
//
//	go run ./cmd/reels-sim -spins 10000 -seed 42 [-turbo] [-step 16.67]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/config"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/systems"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/utils"
)

func main() {
	spins := flag.Int("spins", 1000, "旋转次数")
	seed := flag.Uint64("seed", 0, "随机种子（0 表示使用当前时间）")
	step := flag.Float64("step", 1000.0/60.0, "每帧推进的毫秒数")
	turbo := flag.Bool("turbo", false, "使用快速模式")
	slotPath := flag.String("slot-config", config.SlotConfigPath, "老虎机参数文件")
	symbolsPath := flag.String("symbols", config.SymbolTablePath, "符号表文件")
	verbose := flag.Bool("verbose", false, "输出详细日志")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if *spins <= 0 || *step <= 0 {
		fmt.Fprintln(os.Stderr, "spins and step must be positive")
		os.Exit(2)
	}

	slotCfg, err := config.LoadSlotConfig(*slotPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load slot config: %v\n", err)
		os.Exit(1)
	}
	table, err := config.LoadSymbolTable(*symbolsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load symbol table: %v\n", err)
		os.Exit(1)
	}

	s := utils.SeedOrTime(*seed)
	machine, err := systems.NewSlotMachine(slotCfg, table, utils.NewSeededRand(s))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create slot machine: %v\n", err)
		os.Exit(1)
	}
	machine.SetTurbo(*turbo)

	report, err := simulate(machine, utils.NewManualClock(0), *spins, *step)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("seed=%d turbo=%v step=%.2fms\n\n", s, *turbo, *step)
	report.write(os.Stdout)
}
