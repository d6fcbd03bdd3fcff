package config

// 布局配置常量
// 本文件定义了各个场景的布局参数，所有坐标都是逻辑屏幕坐标（800x600）

// 窗口与通用控件
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 800
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 600

	// BackButtonX 返回按钮左上角X坐标
	BackButtonX = 16.0
	// BackButtonY 返回按钮左上角Y坐标
	BackButtonY = 16.0
	// BackButtonWidth 返回按钮宽度
	BackButtonWidth = 96.0
	// BackButtonHeight 返回按钮高度
	BackButtonHeight = 44.0

	// TitleY 场景标题的基线Y坐标
	TitleY = 40.0
	// TitleFontSize 标题字号
	TitleFontSize = 32.0
	// BodyFontSize 正文字号
	BodyFontSize = 22.0
	// SmallFontSize 小号字
	SmallFontSize = 16.0

	// CaptionHeight 底部旁白字幕条高度
	CaptionHeight = 48.0
	// CaptionDuration 字幕显示时长（秒）
	CaptionDuration = 3.0
)

// 跑道游戏布局
// 跑道区域被均分为 N 条跑道，实体的 X 坐标直接使用屏幕像素
const (
	// RunnerFieldY 跑道区域顶部Y坐标
	RunnerFieldY = 120.0
	// RunnerFieldHeight 跑道区域总高度
	RunnerFieldHeight = 390.0
	// RunnerPlayerDrawWidth 玩家头像绘制宽度（碰撞宽度由 games.yaml 决定）
	RunnerPlayerDrawWidth = 100.0
)

// 能量游戏布局
// 漂浮物使用百分比坐标 (0~100)，绘制时映射到该区域
const (
	// EnergyFieldY 漂浮区域顶部Y坐标
	EnergyFieldY = 100.0
	// EnergyFieldHeight 漂浮区域高度
	EnergyFieldHeight = 500.0
	// EnergyFloaterSize 漂浮物按钮边长
	EnergyFloaterSize = 64.0
	// EnergyBarWidth 能量条宽度
	EnergyBarWidth = 300.0
)

// 记忆游戏布局
const (
	// MemoryColumns 卡片列数
	MemoryColumns = 4
	// MemoryCardSize 卡片边长
	MemoryCardSize = 120.0
	// MemoryCardGap 卡片间距
	MemoryCardGap = 16.0
	// MemoryGridY 卡片网格顶部Y坐标
	MemoryGridY = 150.0
)

// 拼图游戏布局（2x2）
const (
	// PuzzleColumns 拼图列数
	PuzzleColumns = 2
	// PuzzlePieceSize 拼图块边长
	PuzzlePieceSize = 160.0
	// PuzzleGridY 拼图网格顶部Y坐标
	PuzzleGridY = 130.0
)

// LaneCenterY 返回跑道中心的屏幕Y坐标
//
// 参数：
//   - lane: 跑道索引（0 开始）
//   - lanes: 跑道总数
//
// 返回：
//   - float64: 屏幕Y坐标
func LaneCenterY(lane, lanes int) float64 {
	if lanes <= 0 {
		return RunnerFieldY
	}
	laneHeight := RunnerFieldHeight / float64(lanes)
	return RunnerFieldY + float64(lane)*laneHeight + laneHeight/2
}

// EnergyToScreen 将能量游戏的百分比坐标映射到屏幕坐标
//
// 参数：
//   - xPct, yPct: 百分比坐标 (0~100)
//
// 返回：
//   - x, y: 屏幕坐标
func EnergyToScreen(xPct, yPct float64) (x, y float64) {
	x = xPct / 100 * GameWindowWidth
	y = EnergyFieldY + yPct/100*EnergyFieldHeight
	return x, y
}

// GridCellOrigin 返回网格中第 index 个格子的左上角坐标（整体水平居中）
//
// 参数：
//   - index: 格子索引
//   - columns: 列数
//   - cell: 格子边长
//   - gap: 格子间距
//   - top: 网格顶部Y坐标
func GridCellOrigin(index, columns int, cell, gap, top float64) (x, y float64) {
	totalWidth := float64(columns)*cell + float64(columns-1)*gap
	left := (GameWindowWidth - totalWidth) / 2
	col := index % columns
	row := index / columns
	return left + float64(col)*(cell+gap), top + float64(row)*(cell+gap)
}
