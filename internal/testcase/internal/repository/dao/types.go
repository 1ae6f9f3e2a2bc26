package dao

type TestCase struct {
	Id            int64  `gorm:"primaryKey,autoIncrement"`
	ProjectId     int64  `gorm:"index;not null"`
	HangMuc       string `gorm:"type:varchar(256);index"`
	TinhNang      string `gorm:"type:text"`
	SoLanPhaiTest int64  `gorm:"not null;default:1"`
	Priority      string `gorm:"type:varchar(32)"`
	Platform      string `gorm:"type:varchar(32)"`
	Ctime         int64
	Utime         int64
}

type Execution struct {
	Id         int64  `gorm:"primaryKey,autoIncrement"`
	TestCaseId int64  `gorm:"index:idx_case_date;not null"`
	TesterId   int64  `gorm:"index;not null"`
	Loi        string `gorm:"type:text"`
	CamNhan    string `gorm:"type:text"`
	// ExecutionDate 毫秒
	ExecutionDate int64 `gorm:"index:idx_case_date"`
	Ctime         int64
	Utime         int64
}

// TestAssignment 测试人员被分配了哪些用例
type TestAssignment struct {
	Id         int64 `gorm:"primaryKey,autoIncrement"`
	UserId     int64 `gorm:"uniqueIndex:idx_user_case;not null"`
	TestCaseId int64 `gorm:"uniqueIndex:idx_user_case;index;not null"`
	Ctime      int64
}

type ExecutionCount struct {
	TestCaseId int64
	Cnt        int64
}
