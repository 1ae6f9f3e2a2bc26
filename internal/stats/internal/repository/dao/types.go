package dao

// 统计只读取其他模块的表，下面是查询结果对应的结构体

type CaseRow struct {
	Id            int64
	ProjectId     int64
	ProjectName   string
	HangMuc       string
	TinhNang      string
	SoLanPhaiTest int64
	Priority      string
	Platform      string
	Ctime         int64
	Total         int64
	Issues        int64
}

type CountRow struct {
	Total  int64
	Issues int64
}

type PointRow struct {
	ExecutionDate int64
	Issue         int64
}

type UserPerfRow struct {
	Uid               int64
	Name              string
	Executions        int64
	Issues            int64
	LastExecutionDate int64
}

type ActivityRow struct {
	Id            int64
	TestCaseId    int64
	HangMuc       string
	TinhNang      string
	TesterId      int64
	TesterName    string
	Loi           string
	CamNhan       string
	ExecutionDate int64
}

type TesterRow struct {
	Uid               int64
	Name              string
	Email             string
	TotalExecutions   int64
	TotalIssues       int64
	UniqueTestCases   int64
	LastExecutionDate int64
}

type ProjectTesterRow struct {
	ProjectId       int64
	ProjectName     string
	TotalTesters    int64
	ActiveTesters   int64
	TotalExecutions int64
	TotalIssues     int64
}

type LatestRow struct {
	Id         int64
	TestCaseId int64
	Loi        string
}

type GroupRow struct {
	Name   string
	Total  int64
	Issues int64
}

type MemberRow struct {
	Id    int64
	Name  string
	Email string
}
