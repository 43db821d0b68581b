package monitor

import (
	"log"

	"github.com/ezrec/uartmon/config"
	"github.com/ezrec/uartmon/platform"
)

// Build creates a monitor on plat from a profile section. Unset fields take
// the profile defaults.
func Build(plat platform.Platform, mc config.MonitorConfig) (mon *Monitor) {
	p := config.Profile{Monitor: mc}
	config.Normalize(&p)
	mc = p.Monitor

	cfg := Config{
		Banner:     *mc.Banner,
		Hello:      *mc.Hello,
		InitLeds:   *mc.InitLeds,
		BannerLeds: *mc.BannerLeds,
		CycleMask:  *mc.CycleMask,
		Echo:       ECHO_INCREMENT,
	}

	if mc.Echo == config.ECHO_HEX {
		cfg.Echo = ECHO_HEX
	}

	expr := mc.Budget
	cfg.Budget = func(khz uint32) uint32 {
		ticks, err := config.EvalBudget(expr, khz)
		if err != nil {
			log.Printf("monitor: budget: %v", err)
			return platform.OneSecond(khz)
		}
		return ticks
	}

	mon = NewMonitor(plat, cfg)

	return
}
