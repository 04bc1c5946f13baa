package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"secondheart-dashboard/internal/app/config"
	"secondheart-dashboard/internal/app/delivery/terminal"
	"secondheart-dashboard/internal/app/drivers/logger"
	"secondheart-dashboard/internal/app/drivers/restclient"
	"secondheart-dashboard/internal/app/services/appointments"
	"secondheart-dashboard/internal/app/services/directory"
	"secondheart-dashboard/internal/app/services/session"
	"secondheart-dashboard/internal/app/services/slots"
	"syscall"
	"time"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err == nil {
		time.Local = location
	}

	rest, err := restclient.NewClient(internalConfig, log)
	if err != nil {
		log.Fatal(err.Error())
	}

	sessionUsecase := session.NewSessionUsecase(session.NewSessionApiClient(rest), log)
	appointmentClient := appointments.NewAppointmentApiClient(rest)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentClient, log)
	directoryUsecase := directory.NewDirectoryUsecase(directory.NewDirectoryApiClient(rest), log)
	slotUsecase := slots.NewSlotUsecase(slots.NewSlotApiClient(rest), appointmentClient, log)

	in := bufio.NewReader(os.Stdin)
	renderer := terminal.NewRenderer(os.Stdout)
	prompter := terminal.NewStdioPrompter(in, os.Stdout)

	dashboard := terminal.NewDashboard(
		sessionUsecase,
		appointmentUsecase,
		directoryUsecase,
		slotUsecase,
		renderer,
		prompter,
		log,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := dashboard.Run(ctx, in); err != nil && ctx.Err() == nil {
		log.Fatal(err.Error())
	}
}
