package xconstraint

import "github.com/omeyang/xfake/pkg/enum/xenum"

var gender = scalars("Gender",
	scalar("MALE", "male"),
	scalar("FEMALE", "female"),
)

var titleType = scalars("TitleType",
	scalar("TYPICAL", "typical"),
	scalar("ACADEMIC", "academic"),
)

var cardType = scalars("CardType",
	scalar("VISA", "Visa"),
	scalar("MASTER_CARD", "MasterCard"),
	scalar("AMERICAN_EXPRESS", "American Express"),
)

// Gender 返回性别枚举。
func Gender() *xenum.Enumeration[string] { return gender }

// TitleType 返回称谓类型枚举。
func TitleType() *xenum.Enumeration[string] { return titleType }

// CardType 返回信用卡类型枚举。
func CardType() *xenum.Enumeration[string] { return cardType }
