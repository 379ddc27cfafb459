package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Aribhussain/campus-share/config"
	"github.com/Aribhussain/campus-share/internal/handler"
	"github.com/Aribhussain/campus-share/internal/server"
	"github.com/Aribhussain/campus-share/internal/service/share"
	"github.com/Aribhussain/campus-share/pkg/kafka"
	"github.com/Aribhussain/campus-share/pkg/logger"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "frontend")

	var producer sarama.SyncProducer
	if len(cfg.Kafka.Addrs) > 0 {
		p, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.DPanic("kafka", zap.Error(err))
		} else {
			producer = p
		}
	}

	shareSvc := share.NewService(log, cfg.ShareAPI)
	auditor := handler.NewAuditor(producer, cfg.Kafka.AuditTopic, log)
	h := handler.New(log, shareSvc, auditor)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if producer != nil {
		_ = producer.Close() //nolint:errcheck
	}
	log.Info("Graceful shutdown finished")
}
