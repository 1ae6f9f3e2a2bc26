package testioc

import (
	"fmt"
	"strings"

	"github.com/ego-component/egorm"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitSQLiteDB 单元测试使用的内存数据库，每个 name 对应一个独立的库
func InitSQLiteDB(name string) *egorm.Component {
	name = strings.NewReplacer("/", "_", " ", "_").Replace(name)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	res, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}
	sqlDB, err := res.DB()
	if err != nil {
		panic(err)
	}
	// 内存库只要连接还在数据就在，一个连接即可
	sqlDB.SetMaxOpenConns(1)
	return res
}
