package database

import (
	"fmt"
	"log"

	"barbershop/config"
	"barbershop/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init 初始化数据库连接
func Init(cfg *config.Config) error {
	// 构建 MySQL DSN 连接字符串
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	// 获取底层 *sql.DB 连接池配置
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	// 自动迁移数据库表
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Barber{},
		&models.Service{},
		&models.Product{},
		&models.Transaction{},
		&models.Menu{},
	); err != nil {
		return err
	}

	// 初始化默认菜单（仅当表为空时）
	var menuCount int64
	DB.Model(&models.Menu{}).Count(&menuCount)
	if menuCount == 0 {
		defaultMenus := []models.Menu{
			{Name: "仪表盘", Path: "/", Icon: "fa-chart-pie", SortOrder: 10, OwnerOnly: true},
			{Name: "理发师", Path: "/barbers", Icon: "fa-user-group", SortOrder: 20, OwnerOnly: true},
			{Name: "服务项目", Path: "/services", Icon: "fa-scissors", SortOrder: 30, OwnerOnly: true},
			{Name: "商品", Path: "/products", Icon: "fa-box", SortOrder: 40, OwnerOnly: true},
			{Name: "录入交易", Path: "/transactions", Icon: "fa-receipt", SortOrder: 50},
			{Name: "交易记录", Path: "/history", Icon: "fa-clock-rotate-left", SortOrder: 60},
			{Name: "工资报表", Path: "/reports", Icon: "fa-sack-dollar", SortOrder: 70, OwnerOnly: true},
		}
		if err := DB.Create(&defaultMenus).Error; err != nil {
			log.Printf("警告: 初始化默认菜单失败: %v", err)
		}
	}

	// 初始化默认老板账号（仅当用户表为空时），首次登录后请修改密码
	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err == nil {
			owner := models.User{
				Username: "owner",
				Password: string(hashed),
				Name:     "老板",
				Role:     models.RoleOwner,
			}
			if err := DB.Create(&owner).Error; err != nil {
				log.Printf("警告: 初始化默认老板账号失败: %v", err)
			} else {
				log.Println("已创建默认老板账号 owner / admin123，请尽快修改密码")
			}
		}
	}

	log.Println("数据库初始化成功")
	return nil
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}
