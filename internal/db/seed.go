package db

import (
	"fmt"

	"gorm.io/gorm"
)

// defaultFoods 是内置的常见食物热量表，按每 100 g/ml/个 计
var defaultFoods = []Food{
	// 主食
	{Name: "白米饭", CaloriesPer100: 116, Category: "主食", Unit: UnitGram},
	{Name: "糙米饭", CaloriesPer100: 111, Category: "主食", Unit: UnitGram},
	{Name: "小米粥", CaloriesPer100: 46, Category: "主食", Unit: UnitGram},
	{Name: "煮面条", CaloriesPer100: 110, Category: "主食", Unit: UnitGram},
	{Name: "全麦面包", CaloriesPer100: 247, Category: "主食", Unit: UnitGram},
	{Name: "白面包", CaloriesPer100: 265, Category: "主食", Unit: UnitGram},
	{Name: "馒头", CaloriesPer100: 223, Category: "主食", Unit: UnitGram},
	{Name: "蒸红薯", CaloriesPer100: 86, Category: "主食", Unit: UnitGram},
	{Name: "煮土豆", CaloriesPer100: 87, Category: "主食", Unit: UnitGram},
	{Name: "煮玉米", CaloriesPer100: 112, Category: "主食", Unit: UnitGram},
	{Name: "燕麦片", CaloriesPer100: 389, Category: "主食", Unit: UnitGram},
	{Name: "煮藜麦", CaloriesPer100: 120, Category: "主食", Unit: UnitGram},

	// 肉类
	{Name: "鸡胸肉（煎）", CaloriesPer100: 165, Category: "肉类", Unit: UnitGram},
	{Name: "鸡腿肉（煎）", CaloriesPer100: 215, Category: "肉类", Unit: UnitGram},
	{Name: "瘦牛肉（煎）", CaloriesPer100: 250, Category: "肉类", Unit: UnitGram},
	{Name: "牛腩（炖）", CaloriesPer100: 280, Category: "肉类", Unit: UnitGram},
	{Name: "瘦猪肉（炒）", CaloriesPer100: 212, Category: "肉类", Unit: UnitGram},
	{Name: "猪里脊（煎）", CaloriesPer100: 155, Category: "肉类", Unit: UnitGram},
	{Name: "羊肉（炖）", CaloriesPer100: 290, Category: "肉类", Unit: UnitGram},
	{Name: "牛肉丸", CaloriesPer100: 280, Category: "肉类", Unit: UnitGram},

	// 水产
	{Name: "三文鱼（煎）", CaloriesPer100: 206, Category: "水产", Unit: UnitGram},
	{Name: "金枪鱼（水浸罐头）", CaloriesPer100: 116, Category: "水产", Unit: UnitGram},
	{Name: "鳕鱼（蒸）", CaloriesPer100: 105, Category: "水产", Unit: UnitGram},
	{Name: "罗非鱼（煎）", CaloriesPer100: 128, Category: "水产", Unit: UnitGram},
	{Name: "基围虾（煮）", CaloriesPer100: 99, Category: "水产", Unit: UnitGram},

	// 蛋类
	{Name: "煮鸡蛋", CaloriesPer100: 155, Category: "蛋类", Unit: UnitCount},
	{Name: "煎鸡蛋", CaloriesPer100: 196, Category: "蛋类", Unit: UnitCount},
	{Name: "炒鸡蛋", CaloriesPer100: 194, Category: "蛋类", Unit: UnitCount},
	{Name: "溏心蛋", CaloriesPer100: 143, Category: "蛋类", Unit: UnitCount},

	// 豆制品
	{Name: "北豆腐", CaloriesPer100: 116, Category: "豆制品", Unit: UnitGram},
	{Name: "内酯豆腐", CaloriesPer100: 50, Category: "豆制品", Unit: UnitGram},
	{Name: "豆浆（无糖）", CaloriesPer100: 31, Category: "豆制品", Unit: UnitMilliliter},
	{Name: "煮毛豆", CaloriesPer100: 123, Category: "豆制品", Unit: UnitGram},

	// 蔬菜
	{Name: "生菜", CaloriesPer100: 15, Category: "蔬菜", Unit: UnitGram},
	{Name: "番茄", CaloriesPer100: 18, Category: "蔬菜", Unit: UnitGram},
	{Name: "黄瓜", CaloriesPer100: 16, Category: "蔬菜", Unit: UnitGram},
	{Name: "西兰花（煮）", CaloriesPer100: 35, Category: "蔬菜", Unit: UnitGram},
	{Name: "菠菜（炒）", CaloriesPer100: 23, Category: "蔬菜", Unit: UnitGram},
	{Name: "胡萝卜（生）", CaloriesPer100: 41, Category: "蔬菜", Unit: UnitGram},
	{Name: "白萝卜（煮）", CaloriesPer100: 21, Category: "蔬菜", Unit: UnitGram},
	{Name: "茄子（蒸）", CaloriesPer100: 25, Category: "蔬菜", Unit: UnitGram},
	{Name: "西葫芦（炒）", CaloriesPer100: 19, Category: "蔬菜", Unit: UnitGram},
	{Name: "卷心菜（煮）", CaloriesPer100: 25, Category: "蔬菜", Unit: UnitGram},

	// 水果
	{Name: "苹果", CaloriesPer100: 52, Category: "水果", Unit: UnitGram},
	{Name: "香蕉", CaloriesPer100: 89, Category: "水果", Unit: UnitGram},
	{Name: "橙子", CaloriesPer100: 47, Category: "水果", Unit: UnitGram},
	{Name: "草莓", CaloriesPer100: 32, Category: "水果", Unit: UnitGram},
	{Name: "葡萄", CaloriesPer100: 69, Category: "水果", Unit: UnitGram},
	{Name: "西瓜", CaloriesPer100: 30, Category: "水果", Unit: UnitGram},
	{Name: "猕猴桃", CaloriesPer100: 51, Category: "水果", Unit: UnitGram},
	{Name: "牛油果", CaloriesPer100: 160, Category: "水果", Unit: UnitGram},

	// 乳制品
	{Name: "全脂牛奶", CaloriesPer100: 61, Category: "乳制品", Unit: UnitMilliliter},
	{Name: "脱脂牛奶", CaloriesPer100: 34, Category: "乳制品", Unit: UnitMilliliter},
	{Name: "原味酸奶", CaloriesPer100: 59, Category: "乳制品", Unit: UnitGram},
	{Name: "希腊酸奶", CaloriesPer100: 100, Category: "乳制品", Unit: UnitGram},
	{Name: "马苏里拉奶酪", CaloriesPer100: 300, Category: "乳制品", Unit: UnitGram},

	// 油脂与调味
	{Name: "橄榄油", CaloriesPer100: 884, Category: "油脂", Unit: UnitMilliliter},
	{Name: "花生油", CaloriesPer100: 884, Category: "油脂", Unit: UnitMilliliter},
	{Name: "黄油", CaloriesPer100: 717, Category: "油脂", Unit: UnitGram},
	{Name: "白砂糖", CaloriesPer100: 387, Category: "油脂", Unit: UnitGram},
	{Name: "蜂蜜", CaloriesPer100: 304, Category: "油脂", Unit: UnitGram},

	// 坚果
	{Name: "巴旦木", CaloriesPer100: 579, Category: "坚果", Unit: UnitGram},
	{Name: "核桃仁", CaloriesPer100: 654, Category: "坚果", Unit: UnitGram},
	{Name: "花生（炒）", CaloriesPer100: 589, Category: "坚果", Unit: UnitGram},
}

// SeedFoods 按名称逐条检查并补齐内置食物库，可重复执行
func SeedFoods(gdb *gorm.DB) error {
	for _, food := range defaultFoods {
		var count int64
		if err := gdb.Model(&Food{}).
			Where("LOWER(name) = LOWER(?)", food.Name).
			Count(&count).Error; err != nil {
			return fmt.Errorf("check seed food %s: %w", food.Name, err)
		}
		if count > 0 {
			continue
		}

		record := food
		if err := gdb.Create(&record).Error; err != nil {
			return fmt.Errorf("seed food %s: %w", food.Name, err)
		}
	}
	return nil
}
