package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/FleetSched/FleetSched/internal/common/config"
	"github.com/FleetSched/FleetSched/internal/common/db"
	"github.com/FleetSched/FleetSched/internal/common/logger"
	"github.com/FleetSched/FleetSched/internal/fleet"
	"github.com/FleetSched/FleetSched/internal/job"
	"github.com/google/uuid"
)

var (
	configPath = flag.String("config", "configs/job-service.json", "配置文件路径")
)

// 种子数据：先清空任务/客户，再导入样例司机、车辆和当天的任务。
func main() {
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log, err := logger.NewLogger(cfg.Log.Engine, cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.Path)
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	gormDB, err := db.NewMySQL(
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Database,
		cfg.Database.MaxIdle,
		cfg.Database.MaxOpen,
	)
	if err != nil {
		log.Fatalf("failed to init mysql: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&fleet.Client{},
		&fleet.Driver{},
		&fleet.Vehicle{},
		&job.Job{},
	); err != nil {
		log.Fatalf("failed to migrate mysql schema: %v", err)
	}

	ctx := context.Background()
	svc := job.NewService(job.NewRepo(gormDB))
	fleetRepo := fleet.NewRepo(gormDB)

	if err := svc.Reset(ctx); err != nil {
		log.Fatalf("failed to reset jobs/clients: %v", err)
	}
	log.Info("cleared existing jobs and clients")

	drivers := []fleet.Driver{
		{ID: uuid.NewString(), Name: "John Doe", Email: "john.doe@fleet.com", Phone: "+1-555-0101", IsActive: true},
		{ID: uuid.NewString(), Name: "Jane Smith", Email: "jane.smith@fleet.com", Phone: "+1-555-0102", IsActive: true},
		{ID: uuid.NewString(), Name: "Mike Johnson", Email: "mike.johnson@fleet.com", Phone: "+1-555-0103", IsActive: true},
	}
	for i := range drivers {
		if err := fleetRepo.UpsertDriver(ctx, &drivers[i]); err != nil {
			log.Fatalf("failed to seed driver %s: %v", drivers[i].Name, err)
		}
	}
	log.Infof("seeded %d drivers", len(drivers))

	vehicles := []fleet.Vehicle{
		{ID: uuid.NewString(), Make: "Ford", Model: "Transit", Year: 2022, Plate: "ABC123", VIN: "1FTRE342X5HA12345", IsActive: true},
		{ID: uuid.NewString(), Make: "Mercedes-Benz", Model: "Sprinter", Year: 2023, Plate: "XYZ789", VIN: "WD3RE542X5HA67890", IsActive: true},
		{ID: uuid.NewString(), Make: "Iveco", Model: "Daily", Year: 2021, Plate: "JKL456", VIN: "ZCFC135A005123456", IsActive: true},
	}
	for i := range vehicles {
		if err := fleetRepo.UpsertVehicle(ctx, &vehicles[i]); err != nil {
			log.Fatalf("failed to seed vehicle %s %s: %v", vehicles[i].Make, vehicles[i].Model, err)
		}
	}
	log.Infof("seeded %d vehicles", len(vehicles))

	today := time.Now().Format(job.DateLayout)
	inputs := []job.CreateJobInput{
		{
			ClientName:      "ABC Corporation",
			PickupDate:      today,
			PickupTime:      "09:00",
			PickupLocation:  "123 Main St, City A",
			DropOffLocation: "456 Oak St, City B",
		},
		{
			ClientName:      "XYZ Ltd",
			PickupDate:      today,
			PickupTime:      "14:30",
			PickupLocation:  "789 Pine St, City C",
			DropOffLocation: "321 Elm St, City D",
		},
		{
			ClientName:      "ABC Corporation",
			PickupDate:      today,
			PickupTime:      "17:15",
			PickupLocation:  "456 Oak St, City B",
			DropOffLocation: "123 Main St, City A",
		},
	}
	for _, in := range inputs {
		j, err := svc.CreateJob(ctx, in)
		if err != nil {
			log.Fatalf("failed to seed job for %s: %v", in.ClientName, err)
		}
		// 前两单直接排上司机和车辆
		if len(drivers) > 0 && len(vehicles) > 0 && j.PickupTime != "17:15" {
			idx := 0
			if j.PickupTime == "14:30" {
				idx = 1
			}
			if _, err := svc.AssignDriver(ctx, j.ID, drivers[idx].ID); err != nil {
				log.Fatalf("failed to assign driver: %v", err)
			}
			if _, err := svc.AssignVehicle(ctx, j.ID, vehicles[idx].ID); err != nil {
				log.Fatalf("failed to assign vehicle: %v", err)
			}
		}
	}
	log.Infof("seeded %d jobs for %s", len(inputs), today)
	log.Info("seed completed")
}
