package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/embedded"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/types"
	"gopkg.in/yaml.v3"
)

// GamesConfigPath 小游戏配置文件在嵌入文件系统中的路径
const GamesConfigPath = "data/games.yaml"

// GameCommon 所有小游戏共有的配置字段
type GameCommon struct {
	RewardName string          `yaml:"reward"`  // 奖励贴纸的角色名
	Intro      string          `yaml:"intro"`   // 进入游戏时的旁白
	Victory    string          `yaml:"victory"` // 胜利界面标题
	Reward     types.Character `yaml:"-"`       // 解析后的奖励角色
}

// MenuEntry 菜单中的一个游戏入口
type MenuEntry struct {
	Screen string `yaml:"screen"`
	Title  string `yaml:"title"`
}

// MemoryConfig 记忆翻牌游戏配置
type MemoryConfig struct {
	GameCommon    `yaml:",inline"`
	Pairs         int     `yaml:"pairs"`
	MatchDelay    float64 `yaml:"matchDelay"`
	MismatchDelay float64 `yaml:"mismatchDelay"`
	FoundLine     string  `yaml:"foundLine"` // 包含一个 %s 占位符
}

// SortingItem 垃圾分类的一个物品
type SortingItem struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Bin  string `yaml:"bin"` // "recycle" 或 "organic"
}

// SortingConfig 垃圾分类游戏配置
type SortingConfig struct {
	GameCommon     `yaml:",inline"`
	FeedbackDelay  float64       `yaml:"feedbackDelay"`
	RetryOnMistake bool          `yaml:"retryOnMistake"`
	CorrectLine    string        `yaml:"correctLine"`
	WrongLine      string        `yaml:"wrongLine"`
	Items          []SortingItem `yaml:"items"`
}

// RunnerConfig 跑道躲避游戏配置
type RunnerConfig struct {
	GameCommon      `yaml:",inline"`
	RewardScore     int     `yaml:"rewardScore"`
	Lanes           int     `yaml:"lanes"`
	StartLane       int     `yaml:"startLane"`
	Speed           float64 `yaml:"speed"` // 像素/秒
	DespawnX        float64 `yaml:"despawnX"`
	PlayerX         float64 `yaml:"playerX"`
	PlayerWidth     float64 `yaml:"playerWidth"`
	ItemWidth       float64 `yaml:"itemWidth"`
	SpawnInterval   float64 `yaml:"spawnInterval"`
	SpawnX          float64 `yaml:"spawnX"`
	StarProbability float64 `yaml:"starProbability"`
}

// EnergyConfig 能量挑战游戏配置
// 坐标与速度使用百分比单位，速度按每 16 毫秒计
type EnergyConfig struct {
	GameCommon      `yaml:",inline"`
	RewardScore     int     `yaml:"rewardScore"`
	StartEnergy     float64 `yaml:"startEnergy"`
	DrainPerMs      float64 `yaml:"drainPerMs"`
	SpawnIntervalMs float64 `yaml:"spawnIntervalMs"`
	MinX            float64 `yaml:"minX"`
	MaxX            float64 `yaml:"maxX"`
	SpawnY          float64 `yaml:"spawnY"`
	MinSpeed        float64 `yaml:"minSpeed"`
	MaxSpeed        float64 `yaml:"maxSpeed"`
	DespawnY        float64 `yaml:"despawnY"`
	TapScore        int     `yaml:"tapScore"`
	TapEnergy       float64 `yaml:"tapEnergy"`
}

// GardenConfig 照顾植物游戏配置
type GardenConfig struct {
	GameCommon  `yaml:",inline"`
	Stages      int    `yaml:"stages"`
	CorrectLine string `yaml:"correctLine"`
	BloomLine   string `yaml:"bloomLine"`
	WrongLine   string `yaml:"wrongLine"`
}

// PuzzleConfig 拼图游戏配置
type PuzzleConfig struct {
	GameCommon `yaml:",inline"`
	Pieces     int     `yaml:"pieces"`
	WinDelay   float64 `yaml:"winDelay"`
	WinLine    string  `yaml:"winLine"`
}

// FriendshipOption 友谊情景中的一个选项
type FriendshipOption struct {
	ID       int    `yaml:"id"`
	Label    string `yaml:"label"`
	Feedback string `yaml:"feedback"`
}

// FriendshipScenario 友谊情景
type FriendshipScenario struct {
	FriendName string             `yaml:"friend"`
	Situation  string             `yaml:"situation"`
	Correct    int                `yaml:"correct"`
	Options    []FriendshipOption `yaml:"options"`
	Friend     types.Character    `yaml:"-"`
}

// FriendshipConfig 友谊问答游戏配置
type FriendshipConfig struct {
	GameCommon   `yaml:",inline"`
	CorrectDelay float64              `yaml:"correctDelay"`
	WrongDelay   float64              `yaml:"wrongDelay"`
	CompleteLine string               `yaml:"completeLine"`
	Scenarios    []FriendshipScenario `yaml:"scenarios"`
}

// PaletteColor 调色板颜色
type PaletteColor struct {
	ID    string     `yaml:"id"`
	Name  string     `yaml:"name"`
	Hex   string     `yaml:"hex"`
	Color color.RGBA `yaml:"-"`
}

// PaintingConfig 涂色游戏配置
// 调色板最后一项是橡皮擦
type PaintingConfig struct {
	GameCommon `yaml:",inline"`
	Regions    []string       `yaml:"regions"`
	FinishLine string         `yaml:"finishLine"`
	Palette    []PaletteColor `yaml:"palette"`
}

// LabSuggestion 实验室的快捷创意
type LabSuggestion struct {
	Label string `yaml:"label"`
	Text  string `yaml:"text"`
}

// LabConfig 创意实验室配置
type LabConfig struct {
	Model         string          `yaml:"model"`
	Timeout       float64         `yaml:"timeout"` // 单次请求超时（秒）
	ThumbnailSize int             `yaml:"thumbnailSize"`
	Suggestions   []LabSuggestion `yaml:"suggestions"`
}

// GamesConfig games.yaml 的完整结构
type GamesConfig struct {
	Menu       []MenuEntry      `yaml:"menu"`
	Memory     MemoryConfig     `yaml:"memory"`
	Sorting    SortingConfig    `yaml:"sorting"`
	Runner     RunnerConfig     `yaml:"runner"`
	Energy     EnergyConfig     `yaml:"energy"`
	Garden     GardenConfig     `yaml:"garden"`
	Puzzle     PuzzleConfig     `yaml:"puzzle"`
	Friendship FriendshipConfig `yaml:"friendship"`
	Painting   PaintingConfig   `yaml:"painting"`
	Lab        LabConfig        `yaml:"lab"`
}

// LoadGamesConfig 从嵌入文件系统加载小游戏配置
//
// 参数：
//   - path: 配置文件路径（以 "data/" 开头）
//
// 返回：
//   - *GamesConfig: 解析并校验后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGamesConfig(path string) (*GamesConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read games config %s: %w", path, err)
	}

	cfg, err := ParseGamesConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid games config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseGamesConfig 解析 YAML 内容并校验
func ParseGamesConfig(data []byte) (*GamesConfig, error) {
	var cfg GamesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse games YAML: %w", err)
	}

	if err := validateGamesConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validateGamesConfig 校验配置并解析角色名、颜色等派生字段
func validateGamesConfig(cfg *GamesConfig) error {
	commons := []struct {
		name   string
		common *GameCommon
	}{
		{"memory", &cfg.Memory.GameCommon},
		{"sorting", &cfg.Sorting.GameCommon},
		{"runner", &cfg.Runner.GameCommon},
		{"energy", &cfg.Energy.GameCommon},
		{"garden", &cfg.Garden.GameCommon},
		{"puzzle", &cfg.Puzzle.GameCommon},
		{"friendship", &cfg.Friendship.GameCommon},
		{"painting", &cfg.Painting.GameCommon},
	}
	for _, c := range commons {
		reward, ok := types.ParseCharacter(c.common.RewardName)
		if !ok {
			return fmt.Errorf("%s: unknown reward character %q", c.name, c.common.RewardName)
		}
		c.common.Reward = reward
	}

	if cfg.Memory.Pairs < 1 || cfg.Memory.Pairs > len(types.AllCharacters()) {
		return fmt.Errorf("memory: pairs must be between 1 and %d, got %d", len(types.AllCharacters()), cfg.Memory.Pairs)
	}
	if strings.Count(cfg.Memory.FoundLine, "%s") != 1 {
		return fmt.Errorf("memory: foundLine must contain exactly one %%s, got %q", cfg.Memory.FoundLine)
	}

	if len(cfg.Sorting.Items) == 0 {
		return fmt.Errorf("sorting: at least one item is required")
	}
	for _, item := range cfg.Sorting.Items {
		if item.Bin != "recycle" && item.Bin != "organic" {
			return fmt.Errorf("sorting: item %s has unknown bin %q", item.ID, item.Bin)
		}
	}

	if cfg.Runner.Lanes < 1 {
		return fmt.Errorf("runner: lanes must be at least 1, got %d", cfg.Runner.Lanes)
	}
	if cfg.Runner.StartLane < 0 || cfg.Runner.StartLane >= cfg.Runner.Lanes {
		return fmt.Errorf("runner: startLane %d out of range [0,%d)", cfg.Runner.StartLane, cfg.Runner.Lanes)
	}
	if cfg.Runner.SpawnInterval <= 0 || cfg.Runner.Speed <= 0 {
		return fmt.Errorf("runner: speed and spawnInterval must be positive")
	}

	if cfg.Energy.StartEnergy <= 0 || cfg.Energy.SpawnIntervalMs <= 0 {
		return fmt.Errorf("energy: startEnergy and spawnIntervalMs must be positive")
	}
	if cfg.Energy.DrainPerMs <= 0 {
		return fmt.Errorf("energy: drainPerMs must be positive, got %g", cfg.Energy.DrainPerMs)
	}
	if cfg.Energy.MaxX < cfg.Energy.MinX || cfg.Energy.MaxSpeed < cfg.Energy.MinSpeed {
		return fmt.Errorf("energy: max values must not be below min values")
	}

	if cfg.Garden.Stages < 1 {
		return fmt.Errorf("garden: stages must be at least 1, got %d", cfg.Garden.Stages)
	}

	if cfg.Puzzle.Pieces < 2 {
		return fmt.Errorf("puzzle: pieces must be at least 2, got %d", cfg.Puzzle.Pieces)
	}

	if len(cfg.Friendship.Scenarios) == 0 {
		return fmt.Errorf("friendship: at least one scenario is required")
	}
	for i := range cfg.Friendship.Scenarios {
		sc := &cfg.Friendship.Scenarios[i]
		friend, ok := types.ParseCharacter(sc.FriendName)
		if !ok {
			return fmt.Errorf("friendship: scenario %d has unknown friend %q", i, sc.FriendName)
		}
		sc.Friend = friend
		found := false
		for _, opt := range sc.Options {
			if opt.ID == sc.Correct {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("friendship: scenario %d correct option %d not among options", i, sc.Correct)
		}
	}

	if len(cfg.Painting.Regions) == 0 {
		return fmt.Errorf("painting: at least one region is required")
	}
	if len(cfg.Painting.Palette) < 2 {
		return fmt.Errorf("painting: palette needs at least one colour and the eraser")
	}
	for i := range cfg.Painting.Palette {
		c, err := ParseHexColor(cfg.Painting.Palette[i].Hex)
		if err != nil {
			return fmt.Errorf("painting: palette %s: %w", cfg.Painting.Palette[i].ID, err)
		}
		cfg.Painting.Palette[i].Color = c
	}

	if cfg.Lab.Model == "" {
		return fmt.Errorf("lab: model is required")
	}

	return nil
}

// ParseHexColor 解析 "#RRGGBB" 格式的颜色
func ParseHexColor(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
