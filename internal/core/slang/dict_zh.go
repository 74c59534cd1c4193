package slang

// Chinese chat slang and abbreviations mapped to plain Chinese, so the
// translation model sees literal phrasing instead of idioms
var dictZH = [][2]string{
	{"xswl", "笑死我了"},
	{"yyds", "永远的神"},
	{"nsdd", "你说得对"},
	{"zqsg", "真情实感"},
	{"awsl", "啊我死了"},
	{"plgg", "漂亮哥哥"},
	{"plmm", "漂亮妹妹"},
	{"bdjw", "不懂就问"},
	{"dbq", "对不起"},
	{"bhys", "不好意思"},
	{"sjb", "神经病"},
	{"pyq", "朋友圈"},
	{"xjj", "小姐姐"},
	{"xgg", "小哥哥"},
	{"u1s1", "有一说一"},
	{"dddd", "懂得都懂"},
	{"gkd", "搞快点"},
	{"srds", "虽然但是"},
	{"yygq", "阴阳怪气"},
	{"nb", "厉害"},
	{"rnb", "真厉害"},
	{"woc", "哎呀"},
	{"tm", "他妈"},
	{"md", "妈的"},
	{"nss", "暖说说"},
	{"cp", "情侣/搭档"},
	{"be", "悲剧结局"},
	{"he", "圆满结局"},
	{"oe", "开放结局"},
	{"kswl", "太甜了"},
	{"ssfd", "瑟瑟发抖"},
	{"zfwb", "转发微博"},
	{"gz", "关注"},
	{"szd", "是真的"},
	{"wtmxs", "笑死我了"},
	{"yysy", "有一说一"},
	{"bjd", "不知道"},
	{"jms", "姐妹们"},
	{"xdm", "兄弟们"},
	{"lz", "楼主"},
	{"ky", "没眼色"},
	{"zq", "周期"},
	{"py", "朋友"},
	{"hh", "哈哈"},
	{"666", "厉害/顺利"},
	{"520", "我爱你"},
	{"521", "我愿意"},
	{"1314", "一生一世"},
	{"886", "再见"},
	{"88", "再见"},
	{"995", "救救我"},
	{"4242", "是的是的"},
	{"7456", "气死我了"},
	{"9494", "就是就是"},
	{"555", "呜呜呜"},
	{"233", "哈哈"},
	{"996", "高强度工作"},
	{"007", "无休工作"},
	{"250", "傻瓜"},
	{"3q", "谢谢"},
	{"530", "我想你"},
	{"065", "原谅我"},
	{"58", "晚安"},
	{"484", "是不是"},
	{"1920", "依旧爱你"},
	{"987", "对不起"},
	{"87", "白痴"},
	{"1", "收到/赞同"},
	{"亲", "顾客/亲爱的"},
	{"萌", "可爱"},
	{"囧", "尴尬/无奈"},
	{"赞", "好/支持"},
	{"粉", "粉丝"},
	{"黑", "批评者"},
	{"吹", "吹捧"},
	{"水", "灌水/敷衍"},
	{"雷", "震惊/扫兴"},
	{"坑", "陷阱/劣质"},
	{"梗", "笑点/话题"},
	{"草", "哎呀"},
	{"肝", "拼命工作/游戏"},
	{"糊", "过气"},
	{"怼", "反驳/批评"},
	{"躺平", "放弃奋斗"},
	{"内卷", "恶性竞争"},
	{"摆烂", "破罐破摔"},
	{"凡尔赛", "低调炫耀"},
	{"种草", "推荐"},
	{"拔草", "取消购买意愿"},
	{"剁手", "购物"},
	{"吃瓜", "围观八卦"},
	{"瓜", "八卦新闻"},
	{"社畜", "工薪阶层"},
	{"社恐", "社交恐惧"},
	{"社牛", "社交达人"},
	{"爷青回", "唤起回忆"},
	{"爷青结", "青春结束"},
	{"破防", "深受触动/崩溃"},
	{"上头", "着迷/冲动"},
	{"下头", "扫兴"},
	{"海王", "花花公子"},
	{"绿茶", "装纯心机"},
	{"白莲花", "装纯洁"},
	{"键盘侠", "网络喷子"},
	{"柠檬精", "嫉妒的人"},
	{"酸", "嫉妒"},
	{"实锤", "确凿证据"},
	{"划水", "偷懒"},
	{"摸鱼", "偷懒"},
	{"锦鲤", "好运象征"},
	{"硬核", "强悍/专业"},
	{"佛系", "随缘/不争"},
	{"C位", "核心位置"},
	{"打call", "支持/加油"},
	{"pick", "选择/喜欢"},
	{"双标", "双重标准"},
	{"真香", "由于喜欢而改变立场"},
	{"老六", "阴险的人/伏地魔"},
	{"送人头", "故意送死"},
	{"带飞", "带领获胜"},
	{"落地成盒", "秒败"},
	{"非酋", "运气不好的人"},
	{"欧皇", "运气极好的人"},
	{"氪金", "充值/花钱"},
	{"肝帝", "极度努力的玩家"},
	{"二次元", "动漫游文化"},
	{"现充", "现实生活充实者"},
	{"集美", "姐妹"},
	{"甚至", "甚至"},
	{"栓Q", "谢谢/无语"},
	{"芭比Q", "完了"},
	{"绝绝子", "太棒了"},
	{"无语子", "无语"},
	{"耗子尾汁", "好自为之"},
	{"蓝瘦香菇", "难受想哭"},
	{"雨女无瓜", "与你无关"},
	{"这就触及到我的知识盲区了", "我不知道"},
	{"小丑", "自作多情的人"},
	{"显眼包", "爱出风头/丢人可爱"},
	{"脆皮", "体质差"},
	{"特种兵", "高强度旅游/活动"},
	{"泰裤辣", "太酷了"},
	{"尊嘟假嘟", "真的假的"},
	{"哈基米", "萌宠"},
	{"纯爱战神", "专一的人"},
	{"服了", "无奈"},
	{"sb", "傻逼"},
	{"dsb", "大傻逼"},
	{"jb", "鸡巴"},
	{"nb", "牛逼"},
	{"lb", "老逼"},
	{"lowb", "低端/没品"},
	{"fw", "废物"},
	{"nt", "脑瘫"},
	{"nc", "脑残"},
	{"zz", "智障"},
	{"2b", "二逼"},
	{"shabi", "傻逼"},
	{"bitch", "婊子"},
	{"lj", "垃圾"},
	{"tmd", "他妈的"},
	{"md", "妈的"},
	{"tm", "他妈"},
	{"nm", "你妈"},
	{"cnm", "操你妈"},
	{"nmb", "你妈逼"},
	{"nmsl", "你妈死了"},
	{"wdnmd", "我透你妈"},
	{"wnm", "我去你妈"},
	{"mlgb", "马勒戈壁"},
	{"qnmd", "去你妈的"},
	{"woc", "我操"},
	{"wc", "我操"},
	{"kao", "靠"},
	{"ri", "日"},
	{"gun", "滚"},
	{"gwn", "滚"},
	{"qnmd", "去你妈的"},
	{"yp", "约炮"},
	{"pyjy", "屁眼交易"},
	{"gzn", "郭楠"},
	{"xn", "仙女"},
	{"xxn", "小仙女"},
	{"nmsl", "你妈死了"},
	{"4000+", "死妈"},
	{"hsbd", "胡说八道"},
	{"ntr", "被戴绿帽"},
	{"lz", "老子"},
	{"ye", "爷"},
	{"xswl", "笑死我了"},
	{"yygq", "阴阳怪气"},
}
