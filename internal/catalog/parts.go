package catalog

import "github.com/limbo/tabebui/pkg/entity"

var defaultParts = map[entity.AnimalType][]entity.Part{
	entity.AnimalBeef: {
		{ID: "beef_1", Name: "サーロイン", NameKana: "さーろいん", Category: entity.CategoryMeat, Rarity: entity.RarityRare, Description: "柔らかく脂身と赤身のバランスが絶妙な高級部位"},
		{ID: "beef_2", Name: "ヒレ", NameKana: "ひれ", Category: entity.CategoryMeat, Rarity: entity.RarityLegendary, Description: "最も柔らかく脂肪が少ない最高級部位"},
		{ID: "beef_3", Name: "リブロース", NameKana: "りぶろーす", Category: entity.CategoryMeat, Rarity: entity.RarityRare, Description: "霜降りが美しく、ステーキに最適な部位"},
		{ID: "beef_4", Name: "バラ", NameKana: "ばら", Category: entity.CategoryMeat, Rarity: entity.RarityCommon, Description: "赤身と脂身が層になった焼肉の定番部位"},
		{ID: "beef_5", Name: "モモ", NameKana: "もも", Category: entity.CategoryMeat, Rarity: entity.RarityCommon, Description: "赤身が多く、煮込み料理にも適した部位"},
		{ID: "beef_6", Name: "スネ", NameKana: "すね", Category: entity.CategoryMeat, Rarity: entity.RarityCommon, Description: "コラーゲンが豊富で、煮込むと美味しくなる部位"},
		{ID: "beef_7", Name: "タン", NameKana: "たん", Category: entity.CategoryOffal, Rarity: entity.RarityUncommon, Description: "牛の舌で、独特の食感と旨味がある"},
		{ID: "beef_8", Name: "ハラミ", NameKana: "はらみ", Category: entity.CategoryOffal, Rarity: entity.RarityUncommon, Description: "横隔膜の一部で、柔らかく濃厚な味わい"},
		{ID: "beef_9", Name: "カルビ", NameKana: "かるび", Category: entity.CategoryMeat, Rarity: entity.RarityCommon, Description: "あばら骨周辺の肉で、脂身が多い焼肉の王道"},
		{ID: "beef_10", Name: "ミノ", NameKana: "みの", Category: entity.CategoryOffal, Rarity: entity.RarityUncommon, Description: "第一胃で、コリコリとした食感が特徴"},
		{ID: "beef_11", Name: "センマイ", NameKana: "せんまい", Category: entity.CategoryOffal, Rarity: entity.RarityUncommon, Description: "第三胃で、さっぱりとした味わい"},
		{ID: "beef_12", Name: "ハツ", NameKana: "はつ", Category: entity.CategoryOffal, Rarity: entity.RarityUncommon, Description: "心臓で、歯ごたえがあり濃厚な味"},
		{ID: "beef_13", Name: "レバー", NameKana: "ればー", Category: entity.CategoryOffal, Rarity: entity.RarityCommon, Description: "肝臓で、栄養豊富で独特の風味"},
		{ID: "beef_14", Name: "テール", NameKana: "てーる", Category: entity.CategoryOffal, Rarity: entity.RarityRare, Description: "尻尾で、煮込み料理に使われる"},
		{ID: "beef_15", Name: "ユッケ", NameKana: "ゆっけ", Category: entity.CategoryMeat, Rarity: entity.RarityRare, Description: "生食用の新鮮な赤身肉"},
	},
	entity.AnimalPork: {
		{ID: "pork_1", Name: "ロース", NameKana: "ろーす", Category: entity.CategoryMeat, Rarity: entity.RarityCommon, Description: "背中の肉で、トンカツに最適"},
		{ID: "pork_2", Name: "バラ", NameKana: "ばら", Category: entity.CategoryMeat, Rarity: entity.RarityCommon, Description: "三枚肉とも呼ばれ、脂身と赤身が層になっている"},
		{ID: "pork_3", Name: "モモ", NameKana: "もも", Category: entity.CategoryMeat, Rarity: entity.RarityCommon, Description: "後ろ脚の肉で、脂肪が少なくヘルシー"},
		{ID: "pork_4", Name: "肩", NameKana: "かた", Category: entity.CategoryMeat, Rarity: entity.RarityCommon, Description: "前脚の肉で、煮込み料理に向いている"},
		{ID: "pork_5", Name: "ヒレ", NameKana: "ひれ", Category: entity.CategoryMeat, Rarity: entity.RarityUncommon, Description: "最も柔らかく脂肪が少ない部位"},
		{ID: "pork_6", Name: "タン", NameKana: "たん", Category: entity.CategoryOffal, Rarity: entity.RarityUncommon, Description: "豚の舌で、コリコリとした食感"},
		{ID: "pork_7", Name: "ガツ", NameKana: "がつ", Category: entity.CategoryOffal, Rarity: entity.RarityUncommon, Description: "胃で、独特の歯ごたえがある"},
		{ID: "pork_8", Name: "ハツ", NameKana: "はつ", Category: entity.CategoryOffal, Rarity: entity.RarityUncommon, Description: "心臓で、しっかりとした食感"},
		{ID: "pork_9", Name: "レバー", NameKana: "ればー", Category: entity.CategoryOffal, Rarity: entity.RarityCommon, Description: "肝臓で、栄養価が高い"},
		{ID: "pork_10", Name: "カシラ", NameKana: "かしら", Category: entity.CategoryOffal, Rarity: entity.RarityUncommon, Description: "頬肉で、程よい脂身がある"},
		{ID: "pork_11", Name: "トントロ", NameKana: "とんとろ", Category: entity.CategoryMeat, Rarity: entity.RarityRare, Description: "首から肩にかけての希少部位"},
		{ID: "pork_12", Name: "テール", NameKana: "てーる", Category: entity.CategoryOffal, Rarity: entity.RarityRare, Description: "尻尾で、コラーゲンが豊富"},
	},
	entity.AnimalChicken: {
		{ID: "chicken_1", Name: "胸肉", NameKana: "むねにく", Category: entity.CategoryMeat, Rarity: entity.RarityCommon, Description: "胸部の肉で、あっさりとしてヘルシー"},
		{ID: "chicken_2", Name: "モモ肉", NameKana: "ももにく", Category: entity.CategoryMeat, Rarity: entity.RarityCommon, Description: "脚の肉で、ジューシーで旨味が強い"},
		{ID: "chicken_3", Name: "ササミ", NameKana: "ささみ", Category: entity.CategoryMeat, Rarity: entity.RarityCommon, Description: "胸肉の一部で、最も脂肪が少ない"},
		{ID: "chicken_4", Name: "手羽先", NameKana: "てばさき", Category: entity.CategoryMeat, Rarity: entity.RarityCommon, Description: "翼の先端部分で、ゼラチン質が豊富"},
		{ID: "chicken_5", Name: "手羽元", NameKana: "てばもと", Category: entity.CategoryMeat, Rarity: entity.RarityCommon, Description: "翼の根元部分で、骨付きで食べ応えあり"},
		{ID: "chicken_6", Name: "皮", NameKana: "かわ", Category: entity.CategoryMeat, Rarity: entity.RarityUncommon, Description: "焼くとパリパリになる脂身の多い部位"},
		{ID: "chicken_7", Name: "砂肝", NameKana: "すなぎも", Category: entity.CategoryOffal, Rarity: entity.RarityUncommon, Description: "筋胃で、コリコリとした独特の食感"},
		{ID: "chicken_8", Name: "ハツ", NameKana: "はつ", Category: entity.CategoryOffal, Rarity: entity.RarityUncommon, Description: "心臓で、小さいが濃厚な味わい"},
	},
}
