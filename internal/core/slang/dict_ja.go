package slang

// Japanese chat slang and abbreviations mapped to plain Japanese, so the
// translation model sees literal phrasing instead of idioms
var dictJA = [][2]string{
	{"w", "笑"},
	{"www", "大爆笑"},
	{"jk", "女子高生"},
	{"dk", "男子高校生"},
	{"ky", "空気が読めない"},
	{"kwsk", "詳しく"},
	{"wktk", "ワクワク"},
	{"ggrks", "ググれ"},
	{"ks", "カス"},
	{"gkbr", "ガクガクブルブル"},
	{"ng", "駄目"},
	{"gj", "よくやった"},
	{"pk", "プレイヤーキル"},
	{"ry", "以下省略"},
	{"now", "現在"},
	{"nau", "現在"},
	{"wazu", "でした"},
	{"will", "する予定"},
	{"草", "面白い"},
	{"草生える", "面白い"},
	{"乙", "お疲れ様"},
	{"うぽつ", "アップロードお疲れ様"},
	{"おめ", "おめでとう"},
	{"あり", "ありがとう"},
	{"よろ", "よろしく"},
	{"乙カレー", "お疲れ様"},
	{"鯖", "サーバー"},
	{"垢", "アカウント"},
	{"鍵垢", "非公開アカウント"},
	{"本垢", "メインアカウント"},
	{"裏垢", "サブアカウント"},
	{"誰得", "誰が得するの"},
	{"情弱", "情報弱者"},
	{"壁打ち", "独り言"},
	{"ROM", "見るだけ"},
	{"ノ", "挙手"},
	{"888", "拍手"},
	{"ぴえん", "悲しい"},
	{"それな", "その通り"},
	{"わかりみ", "共感"},
	{"つらたん", "辛い"},
	{"やばたにえん", "やばい"},
	{"ワンチャン", "可能性がある"},
	{"あーね", "あーなるほど"},
	{"とりま", "とりあえず"},
	{"すこ", "好き"},
	{"尊い", "最高"},
	{"エモい", "感動的"},
	{"リア充", "充実している人"},
	{"陽キャ", "明るい人"},
	{"陰キャ", "暗い人"},
	{"パリピ", "パーティー好き"},
	{"じわる", "じわじわ笑える"},
	{"バズる", "流行る"},
	{"映える", "見栄えが良い"},
	{"盛れる", "可愛く見える"},
	{"推し", "好きな人"},
	{"沼", "没頭"},
	{"ラグい", "遅延がある"},
	{"野良", "知らない人"},
	{"凸", "突撃"},
	{"エイム", "照準"},
	{"キルレ", "キルレート"},
	{"芋", "キャンプする人"},
	{"砂", "スナイパー"},
	{"確キル", "とどめ"},
	{"蘇生", "復活させる"},
	{"バフ", "強化"},
	{"ナーフ", "弱体化"},
	{"チーター", "不正行為者"},
	{"スマーフ", "初心者狩り"},
	{"姫プ", "守られるプレイ"},
	{"地雷", "下手な人"},
	{"トロール", "迷惑行為"},
	{"沼る", "失敗し続ける"},
	{"ワンパン", "一撃で倒す"},
	{"gg", "良い試合だった"},
	{"nt", "惜しかった"},
	{"オワコン", "時代遅れ"},
	{"詰んだ", "終わった"},
	{"害悪", "迷惑な人"},
	{"老害", "迷惑な年長者"},
	{"キッズ", "子供っぽい人"},
	{"厨二病", "自意識過剰"},
	{"炎上", "批判殺到"},
	{"ディスる", "批判する"},
	{"マウント", "優位を誇示"},
	{"クソゲー", "悪いゲーム"},
	{"kuso", "クソ"},
	{"ks", "カス"},
	{"ksg", "クソガキ"},
	{"ksjj", "クソジジイ"},
	{"ksbba", "クソババア"},
	{"kusowarota", "クソワロタ"},
	{"gomikas", "ゴミカス"},
	{"hage", "ハゲ"},
	{"shine", "死ね"},
	{"shi ne", "死ね"},
	{"4ne", "死ね"},
	{"氏ね", "死ね"},
	{"tahine", "死ね"},
	{"satsu", "殺す"},
	{"564", "殺し"},
	{"baka", "馬鹿"},
	{"aho", "阿呆"},
	{"bk", "馬鹿"},
	{"kichi", "気違い"},
	{"kitsch", "気違い"},
	{"menhera", "精神不安定"},
	{"ikezuman", "性格が悪い"},
	{"busu", "ブス"},
	{"bba", "ババア"},
	{"jji", "ジジイ"},
	{"doutei", "童貞"},
	{"yariman", "ヤリマン"},
	{"bitch", "尻軽女"},
	{"dqn", "非常識な人"},
	{"temee", "てめえ"},
	{"omae", "お前"},
	{"kisama", "貴様"},
	{"koitsu", "こいつ"},
	{"aitsu", "あいつ"},
	{"uzai", "うざい"},
	{"uza", "うざい"},
	{"kimo", "気持ち悪い"},
	{"kimoi", "気持ち悪い"},
	{"tsukaen", "使えない"},
	{"fuzakenna", "ふざけるな"},
	{"damare", "黙れ"},
	{"urusai", "うるさい"},
	{"dasai", "ダサい"},
	{"das", "ダサい"},
}
