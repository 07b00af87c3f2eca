package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"swapflow/config"
	"swapflow/logger"
	"swapflow/models"
	"swapflow/stream"
	"swapflow/swap"
)

func main() {
	log := logger.GetLogger()

	// Load environment variables from .env if present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Error loading .env file")
	}

	configPath := flag.String("config", "config/config.yml", "Path to configuration file")
	contract := flag.String("contract", "BTC-USDT", "Contract code to inspect")
	period := flag.String("period", "1min", "Kline period for the live stream")
	follow := flag.Bool("follow", false, "Keep a live kline stream open until interrupted")

	flag.Parse()

	cfg, err := config.LoadConfig(config.DefaultPath(*configPath))
	if err != nil {
		log.WithError(err).Error("Failed to load configuration")
		os.Exit(1)
	}

	if err := log.Configure(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output, cfg.Logging.MaxAge); err != nil {
		log.WithError(err).Error("Failed to configure logger")
		os.Exit(1)
	}

	log.WithFields(logger.Fields{
		"service": cfg.Swapflow.Name,
		"version": cfg.Swapflow.Version,
	}).Info("starting swapctl")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if strings.ToLower(cfg.Logging.Level) == "report" {
		logger.StartReport(ctx, log, 30*time.Second)
	}

	client, err := swap.New(cfg)
	if err != nil {
		log.WithError(err).Error("failed to build swap client")
		os.Exit(1)
	}

	infos, err := client.ContractInfo(ctx, models.ContractInfoRequest{ContractCode: *contract})
	if err != nil {
		log.WithError(err).Error("failed to fetch contract info")
		os.Exit(1)
	}
	for _, info := range infos {
		log.WithComponent("main").WithFields(logger.Fields{
			"contract_code": info.ContractCode,
			"price_tick":    info.PriceTick,
			"contract_size": info.ContractSize,
		}).Info("contract")
	}

	indexes, err := client.Index(ctx, *contract)
	if err != nil {
		log.WithError(err).Error("failed to fetch index")
		os.Exit(1)
	}
	for _, idx := range indexes {
		log.WithComponent("main").WithFields(logger.Fields{
			"contract_code": idx.ContractCode,
			"index_price":   idx.IndexPrice,
		}).Info("index")
	}

	limits, err := client.PriceLimit(ctx, *contract)
	if err != nil {
		log.WithError(err).Error("failed to fetch price limits")
		os.Exit(1)
	}
	for _, l := range limits {
		log.WithComponent("main").WithFields(logger.Fields{
			"contract_code": l.ContractCode,
			"high_limit":    l.HighLimit,
			"low_limit":     l.LowLimit,
		}).Info("price limit")
	}

	// Account reads need credentials; skip them cleanly in anonymous mode.
	if cfg.API.AccessKey != "" {
		accounts, err := client.CrossAccountInfo(ctx, "")
		if err != nil {
			log.WithError(err).Error("failed to fetch account info")
			os.Exit(1)
		}
		for _, acct := range accounts {
			log.WithComponent("main").WithFields(logger.Fields{
				"margin_account": acct.MarginAccount,
				"margin_balance": acct.MarginBalance,
				"risk_rate":      acct.RiskRate,
			}).Info("account")
		}

		positions, err := client.CrossPositionInfo(ctx, *contract)
		if err != nil {
			log.WithError(err).Error("failed to fetch positions")
			os.Exit(1)
		}
		for _, p := range positions {
			log.WithComponent("main").WithFields(logger.Fields{
				"contract_code": p.ContractCode,
				"direction":     p.Direction,
				"volume":        p.Volume,
				"profit_unreal": p.ProfitUnreal,
			}).Info("position")
		}
	} else {
		log.WithComponent("main").Info("no credentials configured; skipping account reads")
	}

	if !*follow {
		return
	}

	s, err := stream.Subscribe(ctx, cfg, *contract, models.KlinePeriod(*period))
	if err != nil {
		log.WithError(err).Error("failed to open kline stream")
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case tick, ok := <-s.Ticks():
			if !ok {
				if err := s.Err(); err != nil {
					log.WithError(err).Error("kline stream ended")
					os.Exit(1)
				}
				return
			}
			log.WithComponent("main").WithFields(logger.Fields{
				"channel": tick.Channel,
				"close":   tick.Kline.Close,
				"vol":     tick.Kline.Vol,
			}).Info("kline")
		case sig := <-sigChan:
			log.WithFields(logger.Fields{"signal": sig.String()}).Info("shutdown signal received")
			s.Stop()
			cancel()
			log.Info("swapctl stopped")
			return
		}
	}
}
