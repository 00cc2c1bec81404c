package ztr

var specialKeys = []keyEntry{
	{0x40, 0x70, "{Text NewPage}"},
	{0x40, 0x72, "{Text NewLine}"},
	{0x85, 0x60, "{Text Tab}"},
	{0xF4, 0x40, "{Entity 1}"},
	{0xF4, 0x41, "{Entity 2}"},
	{0xF4, 0x42, "{Entity 3}"},
	{0xF4, 0x43, "{Entity 4}"},
	{0xF6, 0x40, "{Key Entity}"},
	{0xF7, 0x40, "{Counter Type 1}"},
	{0xF7, 0x41, "{Counter Type 2}"},
	{0xF7, 0x42, "{Counter Type 3}"},
}

// baseCharaKeys maps the 0x85 page to Latin-1 punctuation and letters
// that Shift-JIS cannot represent.
var baseCharaKeys = []keyEntry{
	{0x85, 0x40, "{€}"},
	{0x85, 0x42, "{‚}"},
	{0x85, 0x44, "{„}"},
	{0x85, 0x45, "{…}"},
	{0x85, 0x46, "{†}"},
	{0x85, 0x47, "{‡}"},
	{0x85, 0x49, "{‰}"},
	{0x85, 0x4A, "{Š}"},
	{0x85, 0x4B, "{‹}"},
	{0x85, 0x4C, "{Œ}"},
	{0x85, 0x4E, "{Ž}"},
	{0x85, 0x51, "{‘}"},
	{0x85, 0x52, "{’}"},
	{0x85, 0x53, "{“}"},
	{0x85, 0x54, "{”}"},
	{0x85, 0x55, "{•}"},
	{0x85, 0x56, "{-}"},
	{0x85, 0x57, "{—}"},
	{0x85, 0x59, "{™}"},
	{0x85, 0x5A, "{š}"},
	{0x85, 0x5B, "{›}"},
	{0x85, 0x5C, "{œ}"},
	{0x85, 0x5E, "{ž}"},
	{0x85, 0x5F, "{Ÿ}"},
	{0x85, 0x61, "{¡}"},
	{0x85, 0x62, "{¢}"},
	{0x85, 0x63, "{£}"},
	{0x85, 0x64, "{¤}"},
	{0x85, 0x65, "{¥}"},
	{0x85, 0x66, "{¦}"},
	{0x85, 0x67, "{§}"},
	{0x85, 0x68, "{¨}"},
	{0x85, 0x69, "{©}"},
	{0x85, 0x6A, "{ª}"},
	{0x85, 0x6B, "{«}"},
	{0x85, 0x6C, "{¬}"},
	{0x85, 0x6E, "{®}"},
	{0x85, 0x6F, "{¯}"},
	{0x85, 0x70, "{°}"},
	{0x85, 0x71, "{±}"},
	{0x85, 0x72, "{²}"},
	{0x85, 0x73, "{³}"},
	{0x85, 0x74, "{´}"},
	{0x85, 0x75, "{µ}"},
	{0x85, 0x76, "{¶}"},
	{0x85, 0x77, "{·}"},
	{0x85, 0x78, "{¸}"},
	{0x85, 0x79, "{¹}"},
	{0x85, 0x7A, "{º}"},
	{0x85, 0x7B, "{»}"},
	{0x85, 0x7C, "{¼}"},
	{0x85, 0x7D, "{½}"},
	{0x85, 0x7E, "{¾}"},
	{0x85, 0x7F, "{¿}"},
	{0x85, 0x9F, "{À}"},
	{0x85, 0x81, "{Á}"},
	{0x85, 0x82, "{Â}"},
	{0x85, 0x83, "{Ã}"},
	{0x85, 0x84, "{Ä}"},
	{0x85, 0x85, "{Å}"},
	{0x85, 0x86, "{Æ}"},
	{0x85, 0x87, "{Ç}"},
	{0x85, 0x88, "{È}"},
	{0x85, 0x89, "{É}"},
	{0x85, 0x8A, "{Ê}"},
	{0x85, 0x8B, "{Ë}"},
	{0x85, 0x8C, "{Ì}"},
	{0x85, 0x8D, "{Í}"},
	{0x85, 0x8E, "{Î}"},
	{0x85, 0x8F, "{Ï}"},
	{0x85, 0x90, "{Ð}"},
	{0x85, 0x91, "{Ñ}"},
	{0x85, 0x92, "{Ò}"},
	{0x85, 0x93, "{Ó}"},
	{0x85, 0x94, "{Ô}"},
	{0x85, 0x95, "{Õ}"},
	{0x85, 0x96, "{Ö}"},
	{0x85, 0xB6, "{×}"},
	{0x85, 0x98, "{Ø}"},
	{0x85, 0x99, "{Ù}"},
	{0x85, 0x9A, "{Ú}"},
	{0x85, 0x9B, "{Û}"},
	{0x85, 0x9C, "{Ü}"},
	{0x85, 0x9D, "{Ý}"},
	{0x85, 0xBD, "{Þ}"},
	{0x85, 0xBE, "{ß}"},
	{0x85, 0xBF, "{à}"},
	{0x85, 0xC0, "{á}"},
	{0x85, 0xC1, "{â}"},
	{0x85, 0xC2, "{ã}"},
	{0x85, 0xC3, "{ä}"},
	{0x85, 0xC4, "{å}"},
	{0x85, 0xC5, "{æ}"},
	{0x85, 0xC6, "{ç}"},
	{0x85, 0xC7, "{è}"},
	{0x85, 0xC8, "{é}"},
	{0x85, 0xC9, "{ê}"},
	{0x85, 0xCA, "{ë}"},
	{0x85, 0xCB, "{ì}"},
	{0x85, 0xCC, "{í}"},
	{0x85, 0xCD, "{î}"},
	{0x85, 0xCE, "{ï}"},
	{0x85, 0xCF, "{ð}"},
	{0x85, 0xD0, "{ñ}"},
	{0x85, 0xD1, "{ò}"},
	{0x85, 0xD2, "{ó}"},
	{0x85, 0xD3, "{ô}"},
	{0x85, 0xD4, "{õ}"},
	{0x85, 0xD5, "{ö}"},
	{0x85, 0xD6, "{÷}"},
	{0x85, 0xD7, "{ø}"},
	{0x85, 0xD8, "{ù}"},
	{0x85, 0xD9, "{ú}"},
	{0x85, 0xDA, "{û}"},
	{0x85, 0xDB, "{ü}"},
	{0x85, 0xDC, "{ý}"},
	{0x85, 0xDD, "{þ}"},
	{0x85, 0xDE, "{ÿ}"},
}

var exCharaKeys = []keyEntry{
	{0x85, 0x80, "{ExChara85 80}"},
	{0x85, 0x97, "{ExChara85 97}"},
	{0x85, 0xA0, "{ExChara85 A0}"},
	{0x85, 0xA1, "{ExChara85 A1}"},
	{0x85, 0xA2, "{ExChara85 A2}"},
	{0x85, 0xA3, "{ExChara85 A3}"},
	{0x85, 0xA4, "{ExChara85 A4}"},
	{0x85, 0xA5, "{ExChara85 A5}"},
	{0x85, 0xA6, "{ExChara85 A6}"},
	{0x85, 0xA7, "{ExChara85 A7}"},
	{0x85, 0xA8, "{ExChara85 A8}"},
	{0x85, 0xA9, "{ExChara85 A9}"},
	{0x85, 0xAA, "{ExChara85 AA}"},
	{0x85, 0xAB, "{ExChara85 AB}"},
	{0x85, 0xAC, "{ExChara85 AC}"},
	{0x85, 0xAD, "{ExChara85 AD}"},
	{0x85, 0xAE, "{ExChara85 AE}"},
	{0x85, 0xAF, "{ExChara85 AF}"},
	{0x85, 0xB0, "{ExChara85 B0}"},
	{0x85, 0xB1, "{ExChara85 B1}"},
	{0x85, 0xB2, "{ExChara85 B2}"},
	{0x85, 0xB3, "{ExChara85 B3}"},
	{0x85, 0xB4, "{ExChara85 B4}"},
	{0x85, 0xB5, "{ExChara85 B5}"},
	{0x85, 0xB7, "{ExChara85 B7}"},
	{0x85, 0xB8, "{ExChara85 B8}"},
	{0x85, 0xB9, "{ExChara85 B9}"},
	{0x85, 0xBA, "{ExChara85 BA}"},
	{0x85, 0xBB, "{ExChara85 BB}"},
	{0x85, 0xBC, "{ExChara85 BC}"},
}

var unkKeys = []keyEntry{
	{0x81, 0x40, "{Unk81 40}"},
	{0xFA, 0x20, "{UnkFA 20}"},
	{0xFF, 0x82, "{UnkFF 82}"},
	{0xFF, 0x83, "{UnkFF 83}"},
	{0xFF, 0x86, "{UnkFF 86}"},
	{0xFF, 0x8F, "{UnkFF 8F}"},
	{0xFF, 0x90, "{UnkFF 90}"},
	{0xFF, 0x91, "{UnkFF 91}"},
	{0xFF, 0x93, "{UnkFF 93}"},
	{0xFF, 0x94, "{UnkFF 94}"},
	{0xFF, 0x96, "{UnkFF 96}"},
	{0xFF, 0x99, "{UnkFF 99}"},
	{0xFF, 0x9A, "{UnkFF 9A}"},
	{0xFF, 0x9B, "{UnkFF 9B}"},
	{0xFF, 0x9D, "{UnkFF 9D}"},
	{0xFF, 0x9E, "{UnkFF 9E}"},
	{0xFF, 0xA9, "{UnkFF A9}"},
	{0xFF, 0xB8, "{UnkFF B8}"},
	{0xFF, 0xC9, "{UnkFF C9}"},
	{0xFF, 0xCC, "{UnkFF CC}"},
	{0xFF, 0xCE, "{UnkFF CE}"},
	{0xFF, 0xD0, "{UnkFF D0}"},
	{0xFF, 0xD3, "{UnkFF D3}"},
	{0xFF, 0xDA, "{UnkFF DA}"},
	{0xFF, 0xDD, "{UnkFF DD}"},
	{0xFF, 0xE0, "{UnkFF E0}"},
	{0xFF, 0xE3, "{UnkFF E3}"},
	{0xFF, 0xE4, "{UnkFF E4}"},
	{0xFF, 0xE6, "{UnkFF E6}"},
	{0xFF, 0xF1, "{UnkFF F1}"},
}

var unk2Keys = []keyEntry{
	{0xF1, 0x78, "{Unk2_F1 78}"},
	{0xF4, 0x44, "{Unk2_F4 44}"},
	{0xF4, 0x45, "{Unk2_F4 45}"},
	{0xF4, 0x46, "{Unk2_F4 46}"},
	{0xF4, 0x47, "{Unk2_F4 47}"},
	{0xF4, 0x48, "{Unk2_F4 48}"},
	{0xF4, 0x49, "{Unk2_F4 49}"},
	{0xF4, 0x60, "{Unk2_F4 60}"},
	{0xF5, 0x40, "{Unk2_F5 40}"},
	{0xF6, 0x60, "{Unk2_F6 60}"},
}

var ff131ColorKeys = []keyEntry{
	{0xF9, 0x32, "{Color Ex00}"},
	{0xF9, 0x33, "{Color Ex01}"},
	{0xF9, 0x34, "{Color Ex02}"},
	{0xF9, 0x35, "{Color Ex03}"},
	{0xF9, 0x36, "{Color Ex04}"},
	{0xF9, 0x37, "{Color Ex05}"},
	{0xF9, 0x38, "{Color Ex06}"},
	{0xF9, 0x39, "{Color Ex07}"},
	{0xF9, 0x3A, "{Color Ex08}"},
	{0xF9, 0x3B, "{Color Ex09}"},
	{0xF9, 0x3C, "{Color Ex10}"},
	{0xF9, 0x3D, "{Color Ex11}"},
	{0xF9, 0x3E, "{Color Ex12}"},
	{0xF9, 0x3F, "{Color Ex13}"},
	{0xF9, 0x40, "{Color White}"},
	{0xF9, 0x41, "{Color IceBlue}"},
	{0xF9, 0x42, "{Color Gold}"},
	{0xF9, 0x43, "{Color LightRed}"},
	{0xF9, 0x44, "{Color Yellow}"},
	{0xF9, 0x45, "{Color Green}"},
	{0xF9, 0x46, "{Color Gray}"},
	{0xF9, 0x47, "{Color LightGold}"},
	{0xF9, 0x48, "{Color Rose}"},
	{0xF9, 0x49, "{Color Purple}"},
	{0xF9, 0x4A, "{Color DarkYellow}"},
	{0xF9, 0x4B, "{Color Gray2}"},
	{0xF9, 0x4C, "{Color Voilet}"},
	{0xF9, 0x4D, "{Color LightGreen}"},
	{0xF9, 0x4F, "{Color Ex14}"},
	{0xF9, 0x50, "{Color Ex15}"},
	{0xF9, 0x51, "{Color Ex16}"},
	{0xF9, 0x52, "{Color Ex17}"},
	{0xF9, 0x53, "{Color Ex18}"},
	{0xF9, 0x54, "{Color Ex19}"},
	{0xF9, 0x55, "{Color Ex20}"},
	{0xF9, 0x56, "{Color Ex21}"},
	{0xF9, 0x57, "{Color Ex22}"},
	{0xF9, 0x58, "{Color Ex23}"},
	{0xF9, 0x59, "{Color Ex24}"},
	{0xF9, 0x5A, "{Color Ex25}"},
	{0xF9, 0x5B, "{Color Ex26}"},
	{0xF9, 0x5E, "{Color Ex27}"},
	{0xF9, 0x5F, "{Color Ex28}"},
}

var ff131IconKeys = []keyEntry{
	{0xF0, 0x40, "{Icon Clock}"},
	{0xF0, 0x41, "{Icon Warning}"},
	{0xF0, 0x42, "{Icon Notification}"},
	{0xF0, 0x43, "{Icon Gil}"},
	{0xF0, 0x44, "{Icon Arrow_Right}"},
	{0xF0, 0x45, "{Icon Arrow_Left}"},
	{0xF0, 0x46, "{Icon Mission_Note}"},
	{0xF0, 0x47, "{Icon Check_Mark}"},
	{0xF0, 0x48, "{Icon Ability_Synthesized}"},
	{0xF2, 0x40, "{Icon Gunblade}"},
	{0xF2, 0x41, "{Icon Pistol}"},
	{0xF2, 0x42, "{Icon Emblem}"},
	{0xF2, 0x43, "{Icon Boomerang}"},
	{0xF2, 0x44, "{Icon Staff}"},
	{0xF2, 0x45, "{Icon Spear}"},
	{0xF2, 0x46, "{Icon Knife}"},
	{0xF2, 0x47, "{Icon Water_Drop}"},
	{0xF2, 0x48, "{Icon Datalog}"},
	{0xF2, 0x49, "{Icon Eidolith_Crystal}"},
	{0xF2, 0x4A, "{Icon Omni_Kit}"},
	{0xF2, 0x4B, "{Icon Shop_Pass}"},
	{0xF2, 0x4C, "{Icon Synthetic_Component}"},
	{0xF2, 0x4D, "{Icon Organic_Component}"},
	{0xF2, 0x4E, "{Icon Catalyst_Component}"},
	{0xF2, 0x4F, "{Icon Accessory_Type1}"},
	{0xF2, 0x50, "{Icon Accessory_Type2}"},
	{0xF2, 0x51, "{Icon Accessory_Type3}"},
	{0xF2, 0x52, "{Icon Accessory_Type4}"},
	{0xF2, 0x53, "{Icon Potion}"},
	{0xF2, 0x54, "{Icon Container_Type1}"},
	{0xF2, 0x55, "{Icon Container_Type2}"},
	{0xF2, 0x56, "{Icon Phoenix_Down}"},
	{0xF2, 0x57, "{Icon Shroud}"},
	{0xF2, 0x58, "{Icon Sack}"},
	{0xF2, 0x59, "{Icon Ability_Passive}"},
	{0xF2, 0x5A, "{Icon Ability_Physical}"},
	{0xF2, 0x5B, "{Icon Ability_Magic}"},
	{0xF2, 0x5C, "{Icon Ability_Defense}"},
	{0xF2, 0x5D, "{Icon Ability_Heal}"},
	{0xF2, 0x5E, "{Icon Ability_Debuff}"},
	{0xF2, 0x5F, "{Icon Status_Ailment}"},
	{0xF2, 0x60, "{Icon Ability_Buff}"},
	{0xF2, 0x61, "{Icon Alert}"},
	{0xF2, 0x62, "{Icon Sword}"},
	{0xF2, 0x63, "{Icon Shield}"},
	{0xF2, 0x64, "{Icon Magic_Staff}"},
	{0xF2, 0x65, "{Icon Unknown1}"},
	{0xF2, 0x66, "{Icon Unknown2}"},
	{0xF2, 0x67, "{Icon Unknown3}"},
	{0xF2, 0x68, "{Icon Ability_Eidolon}"},
	{0xF2, 0x69, "{Icon Ability_Technique}"},
	{0xF2, 0x6A, "{Icon Ribbon}"},
	{0xF2, 0x6B, "{Icon Amulet}"},
	{0xF2, 0x6C, "{Icon Necklace}"},
}

var ff131ButtonKeys = []keyEntry{
	{0xF1, 0x40, "{Btn A}"},
	{0xF1, 0x41, "{Btn B}"},
	{0xF1, 0x42, "{Btn X}"},
	{0xF1, 0x43, "{Btn Y}"},
	{0xF1, 0x44, "{Btn Start}"},
	{0xF1, 0x45, "{Btn Back}"},
	{0xF1, 0x46, "{Btn LB}"},
	{0xF1, 0x47, "{Btn RB}"},
	{0xF1, 0x48, "{Btn LT}"},
	{0xF1, 0x49, "{Btn RT}"},
	{0xF1, 0x4A, "{Btn DPadLeft}"},
	{0xF1, 0x4B, "{Btn DPadDown}"},
	{0xF1, 0x4C, "{Btn DPadRight}"},
	{0xF1, 0x4D, "{Btn DPadUp}"},
	{0xF1, 0x4E, "{Btn LSLeft}"},
	{0xF1, 0x4F, "{Btn LSDown}"},
	{0xF1, 0x50, "{Btn LSRight}"},
	{0xF1, 0x51, "{Btn LSUp}"},
	{0xF1, 0x52, "{Btn LSLeftRight}"},
	{0xF1, 0x53, "{Btn LSUpDown}"},
	{0xF1, 0x54, "{Btn LSPress}"},
	{0xF1, 0x55, "{Btn RSPress}"},
	{0xF1, 0x56, "{Btn RSLeft}"},
	{0xF1, 0x57, "{Btn RSDown}"},
	{0xF1, 0x58, "{Btn RSRight}"},
	{0xF1, 0x59, "{Btn RSUp}"},
	{0xF1, 0x5A, "{Btn RSLeftRight}"},
	{0xF1, 0x5B, "{Btn RSUpDown}"},
	{0xF1, 0x5C, "{Btn LStick}"},
	{0xF1, 0x5D, "{Btn RStick}"},
	{0xF1, 0x5E, "{Btn DPadUpDown}"},
	{0xF1, 0x5F, "{Btn DPadLeftRight}"},
	{0xF1, 0x60, "{Btn DPad}"},
}

var ff132ColorKeys = []keyEntry{
	{0xF9, 0x40, "{Color White}"},
	{0xF9, 0x41, "{Color IceBlue}"},
	{0xF9, 0x42, "{Color Gold}"},
	{0xF9, 0x43, "{Color LightRed}"},
	{0xF9, 0x44, "{Color Yellow}"},
	{0xF9, 0x45, "{Color Green}"},
	{0xF9, 0x46, "{Color Gray}"},
	{0xF9, 0x47, "{Color LightGold}"},
	{0xF9, 0x48, "{Color Rose}"},
	{0xF9, 0x49, "{Color Purple}"},
	{0xF9, 0x4A, "{Color DarkYellow}"},
	{0xF9, 0x4B, "{Color Gray2}"},
	{0xF9, 0x4C, "{Color Voilet}"},
	{0xF9, 0x4D, "{Color LightGreen}"},
	{0xF9, 0x4E, "{Color Sapphire}"},
	{0xF9, 0x4F, "{Color Voilet2}"},
	{0xF9, 0x50, "{Color OliveGreen}"},
	{0xF9, 0x51, "{Color DarkCyan}"},
	{0xF9, 0x52, "{Color Lavender}"},
	{0xF9, 0x53, "{Color Brown}"},
	{0xF9, 0x54, "{Color Gold2}"},
	{0xF9, 0x55, "{Color Gold3}"},
	{0xF9, 0x56, "{Color DarkGray}"},
	{0xF9, 0x57, "{Color DarkRed}"},
	{0xF9, 0x58, "{Color Jade}"},
	{0xF9, 0x59, "{Color SmokeGray}"},
	{0xF9, 0x5A, "{Color DarkGold}"},
	{0xF9, 0x5B, "{Color Magenta}"},
	{0xF9, 0x5C, "{Color PureWhite}"},
	{0xF9, 0x5D, "{Color Orange}"},
	{0xF9, 0x5E, "{Color NavyBlue}"},
}

var ff132IconKeys = []keyEntry{
	{0xF0, 0x40, "{Icon Clock}"},
	{0xF0, 0x41, "{Icon Warning}"},
	{0xF0, 0x42, "{Icon Notification}"},
	{0xF0, 0x43, "{Icon Gil}"},
	{0xF0, 0x44, "{Icon Arrow_Right}"},
	{0xF0, 0x45, "{Icon Arrow_Left}"},
	{0xF0, 0x46, "{Icon Mission_Note}"},
	{0xF0, 0x47, "{Icon Check_Mark}"},
	{0xF0, 0x48, "{Icon Bonus_Ability}"},
	{0xF0, 0x49, "{Icon Foot_Print}"},
	{0xF0, 0x4A, "{Icon Tamed_Crystal}"},
	{0xF0, 0x4B, "{Icon Monster_Cross}"},
	{0xF0, 0x4C, "{Icon Monster}"},
	{0xF0, 0x4D, "{Icon Casino_Coins}"},
	{0xF0, 0x4E, "{Icon Lock_Type1}"},
	{0xF0, 0x4F, "{Icon Lock_Type2}"},
	{0xF0, 0x50, "{Icon Paradigm_Cross}"},
	{0xF0, 0x51, "{Icon Paradigm_Wide}"},
	{0xF0, 0x52, "{Icon Paradigm_Normal}"},
	{0xF0, 0x53, "{Icon Chocobo_Strat}"},
	{0xF0, 0x54, "{Icon Terrible_Condition}"},
	{0xF0, 0x55, "{Icon Subpar_Condition}"},
	{0xF0, 0x56, "{Icon Normal_Condition}"},
	{0xF0, 0x57, "{Icon Good_Condition}"},
	{0xF0, 0x58, "{Icon Top_Condition}"},
	{0xF0, 0x59, "{Icon Nine}"},
	{0xF0, 0x5A, "{Icon Tiny_Bomb}"},
	{0xF0, 0x5B, "{Icon Tiny_Chocobo}"},
	{0xF0, 0x5C, "{Icon Tiny_Mog}"},
	{0xF0, 0x5D, "{Icon Cactuar}"},
	{0xF0, 0x5E, "{Icon Tiny_Chu}"},
	{0xF0, 0x5F, "{Icon Heart}"},
	{0xF0, 0x60, "{Icon Plus}"},
	{0xF0, 0x61, "{Icon Objective}"},
	{0xF2, 0x40, "{Icon Gunblade}"},
	{0xF2, 0x41, "{Icon Pistol}"},
	{0xF2, 0x42, "{Icon Emblem}"},
	{0xF2, 0x43, "{Icon Boomerang}"},
	{0xF2, 0x44, "{Icon Staff}"},
	{0xF2, 0x45, "{Icon Spear}"},
	{0xF2, 0x46, "{Icon Knife}"},
	{0xF2, 0x47, "{Icon Water_Drop}"},
	{0xF2, 0x48, "{Icon Datalog}"},
	{0xF2, 0x49, "{Icon Eidolith_Crystal}"},
	{0xF2, 0x4A, "{Icon Omni_Kit}"},
	{0xF2, 0x4B, "{Icon Shop_Pass}"},
	{0xF2, 0x4C, "{Icon Synthetic_Component}"},
	{0xF2, 0x4D, "{Icon Organic_Component}"},
	{0xF2, 0x4E, "{Icon Catalyst_Component}"},
	{0xF2, 0x4F, "{Icon Accessory_Type1}"},
	{0xF2, 0x50, "{Icon Accessory_Type2}"},
	{0xF2, 0x51, "{Icon Accessory_Type3}"},
	{0xF2, 0x52, "{Icon Accessory_Type4}"},
	{0xF2, 0x53, "{Icon Potion}"},
	{0xF2, 0x54, "{Icon Container_Type1}"},
	{0xF2, 0x55, "{Icon Container_Type2}"},
	{0xF2, 0x56, "{Icon Phoenix_Down}"},
	{0xF2, 0x57, "{Icon Shroud}"},
	{0xF2, 0x58, "{Icon Sack}"},
	{0xF2, 0x59, "{Icon Ability_Passive}"},
	{0xF2, 0x5A, "{Icon Ability_Physical}"},
	{0xF2, 0x5B, "{Icon Ability_Magic}"},
	{0xF2, 0x5C, "{Icon Ability_Defense}"},
	{0xF2, 0x5D, "{Icon Ability_Heal}"},
	{0xF2, 0x5E, "{Icon Ability_Debuff}"},
	{0xF2, 0x5F, "{Icon Status_Ailment}"},
	{0xF2, 0x60, "{Icon Ability_Buff}"},
	{0xF2, 0x61, "{Icon Alert}"},
	{0xF2, 0x62, "{Icon Sword}"},
	{0xF2, 0x63, "{Icon Shield}"},
	{0xF2, 0x64, "{Icon Magic_Staff}"},
	{0xF2, 0x65, "{Icon Unknown1}"},
	{0xF2, 0x66, "{Icon Unknown2}"},
	{0xF2, 0x67, "{Icon Unknown3}"},
	{0xF2, 0x68, "{Icon Ability_Eidolon}"},
	{0xF2, 0x69, "{Icon Ability_Technique}"},
	{0xF2, 0x6A, "{Icon Ribbon}"},
	{0xF2, 0x6B, "{Icon Amulet}"},
	{0xF2, 0x6C, "{Icon Necklace}"},
}

var ff132ButtonKeys = []keyEntry{
	{0xF1, 0x40, "{Btn A}"},
	{0xF1, 0x41, "{Btn B}"},
	{0xF1, 0x42, "{Btn X}"},
	{0xF1, 0x43, "{Btn Y}"},
	{0xF1, 0x44, "{Btn Start}"},
	{0xF1, 0x45, "{Btn Back}"},
	{0xF1, 0x46, "{Btn LB}"},
	{0xF1, 0x47, "{Btn RB}"},
	{0xF1, 0x48, "{Btn LT}"},
	{0xF1, 0x49, "{Btn RT}"},
	{0xF1, 0x4A, "{Btn DPadLeft}"},
	{0xF1, 0x4B, "{Btn DPadDown}"},
	{0xF1, 0x4C, "{Btn DPadRight}"},
	{0xF1, 0x4D, "{Btn DPadUp}"},
	{0xF1, 0x4E, "{Btn LSLeft}"},
	{0xF1, 0x4F, "{Btn LSDown}"},
	{0xF1, 0x50, "{Btn LSRight}"},
	{0xF1, 0x51, "{Btn LSUp}"},
	{0xF1, 0x52, "{Btn LSLeftRight}"},
	{0xF1, 0x53, "{Btn LSUpDown}"},
	{0xF1, 0x54, "{Btn LSPress}"},
	{0xF1, 0x55, "{Btn RSPress}"},
	{0xF1, 0x56, "{Btn RSLeft}"},
	{0xF1, 0x57, "{Btn RSDown}"},
	{0xF1, 0x58, "{Btn RSRight}"},
	{0xF1, 0x59, "{Btn RSUp}"},
	{0xF1, 0x5A, "{Btn RSLeftRight}"},
	{0xF1, 0x5B, "{Btn RSUpDown}"},
	{0xF1, 0x5C, "{Btn LStick}"},
	{0xF1, 0x5D, "{Btn RStick}"},
	{0xF1, 0x5E, "{Btn DPadUpDown}"},
	{0xF1, 0x5F, "{Btn DPadLeftRight}"},
	{0xF1, 0x60, "{Btn DPad}"},
}

var ff133ColorKeys = []keyEntry{
	{0xF9, 0x40, "{Color White}"},
	{0xF9, 0x41, "{Color IceBlue}"},
	{0xF9, 0x42, "{Color Gold}"},
	{0xF9, 0x43, "{Color LightRed}"},
	{0xF9, 0x44, "{Color Yellow}"},
	{0xF9, 0x45, "{Color Green}"},
	{0xF9, 0x46, "{Color Gray}"},
	{0xF9, 0x47, "{Color LightGold}"},
	{0xF9, 0x48, "{Color Rose}"},
	{0xF9, 0x49, "{Color Purple}"},
	{0xF9, 0x4A, "{Color DarkYellow}"},
	{0xF9, 0x4B, "{Color Gray2}"},
	{0xF9, 0x4C, "{Color Voilet}"},
	{0xF9, 0x4D, "{Color LightGreen}"},
	{0xF9, 0x4E, "{Color Sapphire}"},
	{0xF9, 0x4F, "{Color Voilet2}"},
	{0xF9, 0x50, "{Color OliveGreen}"},
	{0xF9, 0x51, "{Color DarkCyan}"},
	{0xF9, 0x52, "{Color Lavender}"},
	{0xF9, 0x53, "{Color Brown}"},
	{0xF9, 0x54, "{Color Gold2}"},
	{0xF9, 0x55, "{Color Gold3}"},
	{0xF9, 0x56, "{Color DarkGray}"},
	{0xF9, 0x57, "{Color DarkRed}"},
	{0xF9, 0x58, "{Color Jade}"},
	{0xF9, 0x59, "{Color SmokeGray}"},
	{0xF9, 0x5A, "{Color DarkGold}"},
	{0xF9, 0x5B, "{Color Magenta}"},
	{0xF9, 0x5C, "{Color PureWhite}"},
	{0xF9, 0x5D, "{Color Orange}"},
	{0xF9, 0x5E, "{Color NavyBlue}"},
}

var ff133IconKeys = []keyEntry{
	{0xF0, 0x40, "{Icon Chat}"},
	{0xF0, 0x41, "{Icon Warning}"},
	{0xF0, 0x42, "{Icon Notification}"},
	{0xF0, 0x43, "{Icon Outerworld_Thoughts}"},
	{0xF0, 0x44, "{Icon Arrow_Right}"},
	{0xF0, 0x45, "{Icon Arrow_Left}"},
	{0xF0, 0x46, "{Icon Mission_Note}"},
	{0xF0, 0x47, "{Icon Thumbs_Up}"},
	{0xF0, 0x48, "{Icon Bonus_Ability}"},
	{0xF0, 0x49, "{Icon Defense_Up}"},
	{0xF0, 0x4A, "{Icon Canvas_Quest_Done}"},
	{0xF0, 0x4B, "{Icon Schema3}"},
	{0xF0, 0x4C, "{Icon Schema2}"},
	{0xF0, 0x4D, "{Icon Schema1}"},
	{0xF0, 0x4E, "{Icon Hourglass}"},
	{0xF0, 0x4F, "{Icon Lock}"},
	{0xF0, 0x50, "{Icon Object0_Big}"},
	{0xF0, 0x51, "{Icon Object1_Big}"},
	{0xF0, 0x52, "{Icon Object2_Big}"},
	{0xF0, 0x53, "{Icon Object_Star_Big}"},
	{0xF0, 0x54, "{Icon Hammer}"},
	{0xF0, 0x55, "{Icon Cube}"},
	{0xF0, 0x56, "{Icon Hourglass_Half}"},
	{0xF0, 0x57, "{Icon Megaphone}"},
	{0xF0, 0x58, "{Icon Gift}"},
	{0xF0, 0x59, "{Icon Object1_Small}"},
	{0xF0, 0x5A, "{Icon Object2_Small}"},
	{0xF0, 0x5B, "{Icon Object_Star_Small}"},
	{0xF0, 0x5C, "{Icon Wizard_Hat}"},
	{0xF0, 0x5D, "{Icon ATB_Speed}"},
	{0xF0, 0x5E, "{Icon Staggering}"},
	{0xF0, 0x5F, "{Icon Stagger_Preserve}"},
	{0xF0, 0x60, "{Icon Small_Star}"},
	{0xF0, 0x61, "{Icon Objective}"},
	{0xF2, 0x40, "{Icon Sword}"},
	{0xF2, 0x41, "{Icon Greatsword}"},
	{0xF2, 0x42, "{Icon Rapier}"},
	{0xF2, 0x43, "{Icon Dual_Blades}"},
	{0xF2, 0x44, "{Icon Staff}"},
	{0xF2, 0x45, "{Icon Spear}"},
	{0xF2, 0x46, "{Icon Knife}"},
	{0xF2, 0x47, "{Icon Water_Drop}"},
	{0xF2, 0x48, "{Icon Datalog}"},
	{0xF2, 0x49, "{Icon Eidolith_Crystal}"},
	{0xF2, 0x4A, "{Icon Wrench}"},
	{0xF2, 0x4B, "{Icon Mechanical_Material}"},
	{0xF2, 0x4C, "{Icon Synthetic_Component}"},
	{0xF2, 0x4D, "{Icon Organic_Component}"},
	{0xF2, 0x4E, "{Icon Catalyst_Component}"},
	{0xF2, 0x4F, "{Icon Arm_Accessory}"},
	{0xF2, 0x50, "{Icon Ring}"},
	{0xF2, 0x51, "{Icon Brooch}"},
	{0xF2, 0x52, "{Icon Head_Accessory}"},
	{0xF2, 0x53, "{Icon Container_Type1}"},
	{0xF2, 0x54, "{Icon Container_Type2}"},
	{0xF2, 0x55, "{Icon Container_Type3}"},
	{0xF2, 0x56, "{Icon Phoenix_Down}"},
	{0xF2, 0x57, "{Icon Clock}"},
	{0xF2, 0x58, "{Icon Sack}"},
	{0xF2, 0x59, "{Icon Auto_Ability}"},
	{0xF2, 0x5A, "{Icon Ability_Physical}"},
	{0xF2, 0x5B, "{Icon Ability_Magic}"},
	{0xF2, 0x5C, "{Icon Shield}"},
	{0xF2, 0x5D, "{Icon Heart_Plus}"},
	{0xF2, 0x5E, "{Icon Ability_Debuff}"},
	{0xF2, 0x5F, "{Icon Status_Ailment}"},
	{0xF2, 0x60, "{Icon Ability_Buff}"},
	{0xF2, 0x61, "{Icon Heart}"},
	{0xF2, 0x62, "{Icon Greatsword2}"},
	{0xF2, 0x63, "{Icon Unknown1}"},
	{0xF2, 0x64, "{Icon Check_Mark}"},
	{0xF2, 0x65, "{Icon Cross_Mark}"},
	{0xF2, 0x66, "{Icon Unknown2}"},
	{0xF2, 0x67, "{Icon Unknown3}"},
	{0xF2, 0x68, "{Icon Ability_Eidolon}"},
	{0xF2, 0x69, "{Icon EP}"},
	{0xF2, 0x6A, "{Icon Ribbon}"},
	{0xF2, 0x6B, "{Icon Amulet}"},
	{0xF2, 0x6C, "{Icon Necklace}"},
	{0xF2, 0x6D, "{Icon Plant_Component}"},
	{0xF2, 0x6E, "{Icon Fluid_Component}"},
	{0xF2, 0x6F, "{Icon Malistone}"},
	{0xF2, 0x70, "{Icon Bow}"},
	{0xF2, 0x71, "{Icon Dual_Blades2}"},
	{0xF2, 0x72, "{Icon Question_Mark}"},
	{0xF2, 0x73, "{Icon Gil}"},
	{0xF2, 0x74, "{Icon Leveling_Allowed}"},
	{0xF2, 0x75, "{Icon Map}"},
	{0xF2, 0x76, "{Icon Garb}"},
	{0xF2, 0x77, "{Icon Item_Capacity}"},
}

var ff133ButtonKeys = []keyEntry{
	{0xF1, 0x40, "{Btn A}"},
	{0xF1, 0x41, "{Btn B}"},
	{0xF1, 0x42, "{Btn X}"},
	{0xF1, 0x43, "{Btn Y}"},
	{0xF1, 0x44, "{Btn Start}"},
	{0xF1, 0x45, "{Btn Back}"},
	{0xF1, 0x46, "{Btn LB}"},
	{0xF1, 0x47, "{Btn RB}"},
	{0xF1, 0x48, "{Btn LT}"},
	{0xF1, 0x49, "{Btn RT}"},
	{0xF1, 0x4A, "{Btn DPadLeft}"},
	{0xF1, 0x4B, "{Btn DPadDown}"},
	{0xF1, 0x4C, "{Btn DPadRight}"},
	{0xF1, 0x4D, "{Btn DPadUp}"},
	{0xF1, 0x4E, "{Btn LSLeft}"},
	{0xF1, 0x4F, "{Btn LSDown}"},
	{0xF1, 0x50, "{Btn LSRight}"},
	{0xF1, 0x51, "{Btn LSUp}"},
	{0xF1, 0x52, "{Btn LSLeftRight}"},
	{0xF1, 0x53, "{Btn LSUpDown}"},
	{0xF1, 0x54, "{Btn L3Press}"},
	{0xF1, 0x55, "{Btn R3Press}"},
	{0xF1, 0x56, "{Btn RSLeft}"},
	{0xF1, 0x57, "{Btn RSDown}"},
	{0xF1, 0x58, "{Btn RSRight}"},
	{0xF1, 0x59, "{Btn RSUp}"},
	{0xF1, 0x5A, "{Btn RSLeftRight}"},
	{0xF1, 0x5B, "{Btn RSUpDown}"},
	{0xF1, 0x5C, "{Btn LStick}"},
	{0xF1, 0x5D, "{Btn RStick}"},
	{0xF1, 0x5E, "{Btn DPadLeftRight}"},
	{0xF1, 0x5F, "{Btn DPadUpDown}"},
	{0xF1, 0x60, "{Btn DPad}"},
	{0xF1, 0x61, "{Btn B_2}"},
	{0xF1, 0x62, "{Btn A_2}"},
}
