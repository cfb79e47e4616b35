package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"udaan/internal/core/config"
	"udaan/internal/core/database"
	"udaan/internal/core/logger"
	"udaan/internal/domain"
	"udaan/pkg/utils"
)

// 开发/演示环境造数：清空后写入示例学生、招聘者、管理员、职位和投递
func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&domain.User{}, &domain.Notification{}, &domain.Job{}, &domain.Application{},
	); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}

	// 清空旧数据
	for _, m := range []any{&domain.Application{}, &domain.Notification{}, &domain.Job{}, &domain.User{}} {
		if err := db.Where("1 = 1").Delete(m).Error; err != nil {
			log.Fatal("clear table failed", zap.Error(err))
		}
	}
	log.Info("cleared existing data")

	mustHash := func(pw string) string {
		h, err := utils.HashPassword(pw)
		if err != nil {
			log.Fatal("hash password failed", zap.Error(err))
		}
		return h
	}

	students := []domain.User{
		{
			ID: utils.NewID(), Name: "Rahul Sharma", Email: "rahul.sharma@student.com",
			PasswordHash: mustHash("student123"), Role: domain.RoleStudent,
			Profile: domain.Profile{Branch: "Computer Science", Year: 3, CGPA: 8.5, Phone: "9876543210", College: "IET DAVV"},
		},
		{
			ID: utils.NewID(), Name: "Priya Patel", Email: "priya.patel@student.com",
			PasswordHash: mustHash("student123"), Role: domain.RoleStudent,
			Profile: domain.Profile{Branch: "Information Technology", Year: 2, CGPA: 9.1, Phone: "9876543211", College: "IET DAVV"},
		},
		{
			ID: utils.NewID(), Name: "Amit Kumar", Email: "amit.kumar@student.com",
			PasswordHash: mustHash("student123"), Role: domain.RoleStudent,
			Profile: domain.Profile{Branch: "Electronics", Year: 3, CGPA: 7.8, Phone: "9876543212", College: "IET DAVV"},
		},
	}
	recruiters := []domain.User{
		{
			ID: utils.NewID(), Name: "Sundar Pichai", Email: "hr@google.com",
			PasswordHash: mustHash("recruiter123"), Role: domain.RoleRecruiter,
			Profile: domain.Profile{Phone: "9876543230"},
		},
		{
			ID: utils.NewID(), Name: "Neha Kapoor", Email: "talent@flipkart.com",
			PasswordHash: mustHash("recruiter123"), Role: domain.RoleRecruiter,
			Profile: domain.Profile{Phone: "9876543234"},
		},
	}
	admin := domain.User{
		ID: utils.NewID(), Name: "Dr. Rajesh Verma", Email: "admin@udaan.com",
		PasswordHash: mustHash("admin123"), Role: domain.RoleAdmin,
		Profile: domain.Profile{Phone: "9876543220"},
	}

	users := append(append(students, recruiters...), admin)
	if err := db.Create(&users).Error; err != nil {
		log.Fatal("seed users failed", zap.Error(err))
	}
	log.Info("seeded users", zap.Int("count", len(users)))

	jobs := []domain.Job{
		{
			ID: utils.NewID(), Title: "Software Engineer Intern", Company: "Google India",
			Description:    "Work on Google-scale systems and help build scalable web services.",
			SkillsRequired: []string{"Go", "Distributed Systems"},
			Eligibility:    "B.Tech (CS/IT) with CGPA 8.0+", LastDate: "2026-12-31",
			Status: domain.JobActive, RecruiterID: recruiters[0].ID,
		},
		{
			ID: utils.NewID(), Title: "Frontend Developer", Company: "Flipkart",
			Description:    "Develop modern web UIs using React and TypeScript.",
			SkillsRequired: []string{"React", "TypeScript"},
			Eligibility:    "B.Tech (CS/IT) with CGPA 7.5+", LastDate: "2026-11-30",
			Status: domain.JobActive, RecruiterID: recruiters[1].ID,
		},
	}
	if err := db.Create(&jobs).Error; err != nil {
		log.Fatal("seed jobs failed", zap.Error(err))
	}
	log.Info("seeded jobs", zap.Int("count", len(jobs)))

	apps := []domain.Application{
		{
			ID: utils.NewID(), StudentID: students[0].ID, JobID: jobs[0].ID,
			Status: domain.ApplicationPending, AppliedAt: time.Now(),
		},
		{
			ID: utils.NewID(), StudentID: students[1].ID, JobID: jobs[1].ID,
			Status: domain.ApplicationPending, AppliedAt: time.Now(),
		},
	}
	if err := db.Create(&apps).Error; err != nil {
		log.Fatal("seed applications failed", zap.Error(err))
	}
	log.Info("seeded applications", zap.Int("count", len(apps)))

	log.Info("seed done",
		zap.String("student_login", "rahul.sharma@student.com / student123"),
		zap.String("recruiter_login", "hr@google.com / recruiter123"),
		zap.String("admin_login", "admin@udaan.com / admin123"),
	)
}
