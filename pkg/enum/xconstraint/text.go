package xconstraint

import "github.com/omeyang/xfake/pkg/enum/xenum"

// emojyCategory 表情分类。DEFAULT 固定为 SMILEYS_AND_EMOTION 的别名，
// 不随列表首项变化。
var emojyCategory = xenum.MustNew("EmojyCategory", []xenum.Member[string]{
	scalar("DEFAULT", "smileys_and_emotion"),
	scalar("SMILEYS_AND_EMOTION", "smileys_and_emotion"),
	scalar("PEOPLE_AND_BODY", "people_and_body"),
	scalar("ANIMALS_AND_NATURE", "animals_and_nature"),
	scalar("FOOD_AND_DRINK", "food_and_drink"),
	scalar("TRAVEL_AND_PLACES", "travel_and_places"),
	scalar("ACTIVITIES", "activities"),
	scalar("OBJECTS", "objects"),
	scalar("SYMBOLS", "symbols"),
	scalar("FLAGS", "flags"),
}, xenum.WithAlias("DEFAULT", "SMILEYS_AND_EMOTION"), xenum.WithUniqueValues())

// EmojyCategory 返回表情分类枚举。
func EmojyCategory() *xenum.Enumeration[string] { return emojyCategory }
