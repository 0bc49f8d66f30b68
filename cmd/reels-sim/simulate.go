package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/systems"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/types"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/utils"
)

// maxFramesPerSpin 单次旋转的帧数上限，超过视为卡死
const maxFramesPerSpin = 100000

// report 模拟结果
type report struct {
	stats systems.SpinStats
	// rowWins 每个赔付行的中奖次数
	rowWins map[int]int
	// symbolWins 每条中奖线的首个非百搭符号（全百搭记为 Wild）
	symbolWins map[types.SymbolID]int
	// totalMs 所有旋转的模拟时长总和
	totalMs float64
	// longestMs 最长的一次旋转
	longestMs float64
}

// simulate 连续旋转 spins 次，每次旋转以 step 毫秒为一帧推进到结束
func simulate(m *systems.SlotMachine, clock *utils.ManualClock, spins int, step float64) (*report, error) {
	r := &report{
		rowWins:    make(map[int]int),
		symbolWins: make(map[types.SymbolID]int),
	}

	for i := 0; i < spins; i++ {
		start := clock.NowMillis()
		if !m.RequestSpin() {
			return nil, fmt.Errorf("spin %d rejected while idle", i)
		}

		frames := 0
		for m.IsSpinning() {
			if frames >= maxFramesPerSpin {
				return nil, fmt.Errorf("spin %d did not finish after %d frames", i, frames)
			}
			m.Update(clock.Advance(step))
			frames++
		}

		elapsed := clock.NowMillis() - start
		r.totalMs += elapsed
		if elapsed > r.longestMs {
			r.longestMs = elapsed
		}

		for _, line := range systems.WinningLines(m.LastResults()) {
			r.rowWins[line.Row]++
			r.symbolWins[lineSymbol(line)]++
		}
	}

	r.stats = m.Stats()
	return r, nil
}

// lineSymbol 中奖线代表的符号
func lineSymbol(line systems.LineResult) types.SymbolID {
	for _, id := range line.Symbols {
		if !id.IsWild() {
			return id
		}
	}
	return types.SymbolWild
}

func (r *report) write(w io.Writer) {
	fmt.Fprintf(w, "Spins:          %d\n", r.stats.Spins)
	fmt.Fprintf(w, "Winning spins:  %d\n", r.stats.WinningSpins)
	fmt.Fprintf(w, "Winning lines:  %d\n", r.stats.WinningLines)
	fmt.Fprintf(w, "Hit rate:       %.2f%%\n", r.stats.HitRate()*100)
	if r.stats.Spins > 0 {
		fmt.Fprintf(w, "Avg spin time:  %.0fms (longest %.0fms)\n", r.totalMs/float64(r.stats.Spins), r.longestMs)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\nRow\tWins\t")
	rows := make([]int, 0, len(r.rowWins))
	for row := range r.rowWins {
		rows = append(rows, row)
	}
	sort.Ints(rows)
	for _, row := range rows {
		fmt.Fprintf(tw, "%d\t%d\t\n", row, r.rowWins[row])
	}

	fmt.Fprintln(tw, "\nSymbol\tWins\t")
	for _, id := range types.AllSymbols() {
		fmt.Fprintf(tw, "%s\t%d\t\n", id, r.symbolWins[id])
	}
	tw.Flush()
}
