package kanji

// Per-level reference kanji, one rune per kanji. The JLPT has published no
// official kanji list since 2010; these follow the commonly used study
// lists. Each kanji appears only at the tier it is usually introduced, so
// the per-level sets are disjoint.

const jlptN5 = "" +
	"日一国人年大十二本中長出三時行見月分後前生五間上東四今金九入" +
	"学高円子外八六下来気小七山話女北午百書先名川千水半男西電校語" +
	"土木聞食車何南万毎白天母火右読友左休父雨"

const jlptN4 = "" +
	"会同事自社発者地業方新場員立開手力問代明動京目通言理体田主題" +
	"意不作用度強公持野以思家世多正安院心界教文元重近考画海売知道" +
	"集別物使品計死特私始朝運終台広住真有口少町料工建空急止送切転" +
	"研足究楽起着店病質待試族銀早映親験英医仕去味写字答夜音注帰古" +
	"歌買悪図週室歩風紙黒花春赤青館屋色走秋夏習駅洋旅服夕借曲飲肉" +
	"貸堂鳥飯勉冬昼茶弟牛魚兄犬妹姉漢"

const jlptN3 = "" +
	"政議民連対部合市内相定回選米実関決全表戦経最現調化当約首法性" +
	"要制治務成期取都和機平加受続進数記初指権支産点報済活原共得解" +
	"交資予向際勝面告反判認参利組信在件側任引求所次昨論官増係感情" +
	"投示変打直両式確果容必演歳争談能位置流格疑過局放常状球職与供" +
	"役構割費付由説難優夫収断石違消神番規術備宅害配警育席訪乗残想" +
	"声念助労例然限追商葉伝働形景落好退頭負渡失差末守若種美命福望" +
	"松非観察整段横深申様財港識呼達良候程満敗値突光路科積他処太客" +
	"否師登易速存飛殺号単座破除完降責捕危給苦迎園具辞因馬愛富彼未" +
	"舞亡冷適婦寄込顔類余王返妻背熱宿薬険頼覚船途許抜便留罪努精散" +
	"静幾雑恐枕汗窓越柔恋毒皆髪恥忙晴吸吹遊昔曜忘疲寝更暮絡慣押倒" +
	"迷絶幸老遅洗凍煙袋机濡塗耳閉緒箱捜掘荒戻替猫偶遇"

const jlptN2 = "" +
	"党協総区領県設保改第結派府査委軍団各島革村勢減再税営比防補境" +
	"導副算輸述線農州武象域額欧担準賞辺造被技低復移個門課脳極含諸" +
	"納圧密秘換玉版効拡故砂乱緊粧欠刷枚冊芸億兆腹詰硬軟磁較豊録" +
	"尊豪仏寺僧侍城郡藩層庁署奈菜祈燃祝隣模嘆掃汚依威為偉維緯胃囲" +
	"灰酸塩汁液涙泉滴沈浮泡濃淡溝滞滝湿潤乾燥呂括抱抵抑拠拾捨掛" +
	"払扱批承拍招拝康徒往征徴忠誠恒慎憶憎懐恵悟悩惑慰勤勧募勘敏繁" +
	"簡素紅紫緑彩彫刻刀刃剤創劇烈煮焦灯炭畑畳略畜畔異盛盟監盤看省" +
	"眠瞬矛短砲砕磨礎祉祥禁禅稼稲稿穂穏穫窒端符筒策箇範築簿籍粒粗" +
	"糖糧系紀紋純紹細紳綱網綿績繊織縁縄縮繕"

const jlptN1 = "" +
	"亜哀挨曖宛嵐尉遺鬱畝浦詠影鋭疫悦謁閲炎宴怨援猿鉛艶凹旺殴桜翁" +
	"奥岡臆虞乙俺卸佳苛架華菓渦嫁暇禍靴寡蚊牙瓦雅餓介戒怪拐悔塊楷" +
	"潰壊諧貝劾涯崖慨蓋該概骸垣柿核殻郭隔閣獲嚇岳顎喝渇葛滑褐轄且" +
	"株釜鎌刈甘缶肝冠陥堪喚敢棺款閑寛幹憾還環韓艦鑑丸岸岩玩眼頑願" +
	"企伎岐希忌汽奇季軌既飢鬼基亀喜揮棋貴棄毀旗器畿輝騎宜偽欺儀戯" +
	"擬犠菊吉喫却脚逆虐久及弓丘旧朽臼泣級糾宮救嗅窮巨居拒挙虚距御" +
	"漁凶叫狂享況峡挟狭恭胸脅郷橋矯鏡競響驚仰暁凝巾斤均菌琴筋僅錦" +
	"謹襟吟句駆惧愚隅串屈窟熊繰君訓勲薫群刑径茎型契啓掲渓蛍敬軽傾" +
	"携継詣慶憬稽憩鶏鯨隙撃激桁穴血傑潔券肩倹兼剣拳軒健圏堅検嫌献" +
	"絹遣憲賢謙鍵繭顕懸幻玄弦舷源厳己戸固股虎孤弧枯庫湖雇誇鼓錮顧" +
	"互呉娯碁誤護勾孔功巧甲后江坑孝抗攻拘肯侯厚洪皇郊香耕航貢控梗" +
	"黄喉慌絞項鉱酵興衡鋼講購乞拷剛傲克谷穀酷獄骨駒頃困昆恨根婚混" +
	"痕紺魂墾懇佐沙唆詐鎖挫才災采宰栽採祭斎裁債催塞載埼材崎削柵索" +
	"酢搾錯咲札刹拶撮擦皿桟蚕惨傘賛斬暫士氏史司矢旨糸至伺志刺枝肢" +
	"姿施恣脂視詞歯嗣詩飼誌雌摯賜諮似児滋慈餌璽鹿軸疾執嫉漆芝舎射" +
	"赦斜遮謝邪蛇勺尺酌釈爵弱寂朱狩殊珠酒腫趣寿呪授需儒樹囚舟秀周" +
	"宗臭修袖羞就衆愁酬醜蹴襲充従渋銃獣縦叔淑粛塾熟俊旬巡盾准殉循" +
	"順遵庶暑如序叙徐升召匠床抄肖尚昇沼昭宵将症称笑唱渉章訟掌晶焼" +
	"硝詔証傷奨照詳彰障憧衝償礁鐘丈冗条浄剰蒸壌嬢錠譲醸拭植殖飾触" +
	"嘱辱尻伸臣芯身辛侵津唇娠振浸針森診審震薪仁尽迅甚陣尋腎須垂炊" +
	"帥粋衰推酔遂睡随髄枢崇据杉裾寸瀬是井姓斉星牲凄逝清婿聖製誓請" +
	"醒斥析脊隻惜戚跡折拙窃接雪摂節舌仙占宣専浅染扇栓旋煎羨腺詮践" +
	"箋銭潜遷薦鮮善漸膳狙阻祖租措疎訴塑遡双壮奏荘草倉挿桑巣曹曽爽" +
	"喪痩葬装遭槽踪操霜騒藻像蔵贈臓即束促則息捉測俗属賊卒率孫損遜" +
	"汰妥唾堕惰駄耐怠胎帯泰堆逮隊態戴択沢卓拓託濯諾濁但脱奪棚誰丹" +
	"旦胆探綻誕鍛弾暖壇池致痴稚緻竹逐蓄秩嫡仲虫沖宙抽柱衷酎鋳駐著" +
	"貯丁弔挑帳張眺釣頂脹超腸跳嘲潮澄聴懲勅捗珍朕陳賃鎮椎墜痛塚漬" +
	"坪爪鶴呈廷底邸亭貞帝訂庭逓停偵堤提艇締諦泥的笛摘敵溺迭哲鉄徹" +
	"撤典展添塡殿斗吐妬賭奴怒豆到逃唐桃討透悼盗陶塔搭棟湯痘等統踏" +
	"謄藤闘騰洞胴童銅瞳峠匿督徳篤独栃凸届屯豚頓貪鈍曇丼那梨謎鍋尼" +
	"弐匂虹乳尿妊忍寧捻粘把波覇婆罵杯肺俳排廃輩倍梅培陪媒賠伯泊迫" +
	"剝舶博薄麦漠縛爆箸肌鉢伐罰閥氾犯帆汎伴坂阪板班般販斑搬煩頒晩" +
	"蛮皮妃披肥卑悲扉碑罷避尾眉微鼻膝肘匹泌筆姫氷俵票評漂標苗秒描" +
	"浜貧賓頻瓶布扶怖阜附訃赴普腐敷膚賦譜侮封伏幅複覆沸粉紛雰噴墳" +
	"憤奮丙兵併並柄陛塀幣弊蔽餅壁璧癖蔑片偏遍編弁哺舗墓慕包芳邦奉" +
	"宝胞俸倣峰崩蜂飽褒縫乏坊妨房肪某冒剖紡傍帽棒貿貌暴膨謀頰朴牧" +
	"睦僕墨撲没勃堀奔翻凡盆麻摩魔昧埋幕膜又抹慢漫魅岬蜜脈妙無夢霧" +
	"娘冥銘鳴滅免麺茂毛妄盲耗猛黙冶弥厄訳躍闇油喩愉諭癒唯勇幽悠郵" +
	"湧猶裕雄誘憂融誉預幼羊妖庸揚揺陽溶腰瘍踊窯養擁謡沃浴欲翌翼拉" +
	"裸羅雷酪辣卵覧濫藍欄吏里痢裏履璃離陸律慄柳竜隆硫侶虜慮了涼猟" +
	"陵量僚寮療瞭林厘倫輪臨瑠累塁令礼励鈴零霊隷齢麗暦歴列劣裂廉練" +
	"錬炉賂露弄郎朗浪廊楼漏籠麓賄脇枠湾腕"
