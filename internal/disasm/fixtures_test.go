package disasm

// Bytecode prefix of the contract at 0xa327075af2a223a1c83a36ada1126afe7430f955,
// cut partway through its code.
const contractPrefix = "0x6060604052361561001f5760e060020a600035046372ea4b8c811461010c575b61011b3460008080678ac7230489e8000084106101d557600180548101908190556003805433929081101561000257906000526020600020900160006101000a815481600160a060020a0302191690830217905550678ac7230489e80000840393508350678ac7230489e800006000600082828250540192505081905550600260016000505411151561011d576003"

const contractListing = "" +
	"0x0000:\tPUSH1\t0x60\n" +
	"0x0002:\tPUSH1\t0x40\n" +
	"0x0004:\tMSTORE\n" +
	"0x0005:\tCALLDATASIZE\n" +
	"0x0006:\tISZERO\n" +
	"0x0007:\tPUSH2\t0x001f\n" +
	"0x000a:\tJUMPI\n" +
	"0x000b:\tPUSH1\t0xe0\n" +
	"0x000d:\tPUSH1\t0x02\n" +
	"0x000f:\tEXP\n" +
	"0x0010:\tPUSH1\t0x00\n" +
	"0x0012:\tCALLDATALOAD\n" +
	"0x0013:\tDIV\n" +
	"0x0014:\tPUSH4\t0x72ea4b8c\n" +
	"0x0019:\tDUP2\n" +
	"0x001a:\tEQ\n" +
	"0x001b:\tPUSH2\t0x010c\n" +
	"0x001e:\tJUMPI\n" +
	"0x001f:\tJUMPDEST\n" +
	"0x0020:\tPUSH2\t0x011b\n" +
	"0x0023:\tCALLVALUE\n" +
	"0x0024:\tPUSH1\t0x00\n" +
	"0x0026:\tDUP1\n" +
	"0x0027:\tDUP1\n" +
	"0x0028:\tPUSH8\t0x8ac7230489e80000\n" +
	"0x0031:\tDUP5\n" +
	"0x0032:\tLT\n" +
	"0x0033:\tPUSH2\t0x01d5\n" +
	"0x0036:\tJUMPI\n" +
	"0x0037:\tPUSH1\t0x01\n" +
	"0x0039:\tDUP1\n" +
	"0x003a:\tSLOAD\n" +
	"0x003b:\tDUP2\n" +
	"0x003c:\tADD\n" +
	"0x003d:\tSWAP1\n" +
	"0x003e:\tDUP2\n" +
	"0x003f:\tSWAP1\n" +
	"0x0040:\tSSTORE\n" +
	"0x0041:\tPUSH1\t0x03\n" +
	"0x0043:\tDUP1\n" +
	"0x0044:\tSLOAD\n" +
	"0x0045:\tCALLER\n" +
	"0x0046:\tSWAP3\n" +
	"0x0047:\tSWAP1\n" +
	"0x0048:\tDUP2\n" +
	"0x0049:\tLT\n" +
	"0x004a:\tISZERO\n" +
	"0x004b:\tPUSH2\t0x0002\n" +
	"0x004e:\tJUMPI\n" +
	"0x004f:\tSWAP1\n" +
	"0x0050:\tPUSH1\t0x00\n" +
	"0x0052:\tMSTORE\n" +
	"0x0053:\tPUSH1\t0x20\n" +
	"0x0055:\tPUSH1\t0x00\n" +
	"0x0057:\tSHA3\n" +
	"0x0058:\tSWAP1\n" +
	"0x0059:\tADD\n" +
	"0x005a:\tPUSH1\t0x00\n" +
	"0x005c:\tPUSH2\t0x0100\n" +
	"0x005f:\tEXP\n" +
	"0x0060:\tDUP2\n" +
	"0x0061:\tSLOAD\n" +
	"0x0062:\tDUP2\n" +
	"0x0063:\tPUSH1\t0x01\n" +
	"0x0065:\tPUSH1\t0xa0\n" +
	"0x0067:\tPUSH1\t0x02\n" +
	"0x0069:\tEXP\n" +
	"0x006a:\tMUL\n" +
	"0x006b:\tSUB\n" +
	"0x006c:\tNOT\n" +
	"0x006d:\tAND\n" +
	"0x006e:\tSWAP1\n" +
	"0x006f:\tDUP4\n" +
	"0x0070:\tSUB\n" +
	"0x0071:\tOR\n" +
	"0x0072:\tSWAP1\n" +
	"0x0073:\tSSTORE\n" +
	"0x0074:\tPOP\n" +
	"0x0075:\tPUSH8\t0x8ac7230489e80000\n" +
	"0x007e:\tDUP5\n" +
	"0x007f:\tMUL\n" +
	"0x0080:\tSWAP4\n" +
	"0x0081:\tPOP\n" +
	"0x0082:\tDUP4\n" +
	"0x0083:\tPOP\n" +
	"0x0084:\tPUSH8\t0x8ac7230489e80000\n" +
	"0x008d:\tPUSH1\t0x00\n" +
	"0x008f:\tPUSH1\t0x00\n" +
	"0x0091:\tDUP3\n" +
	"0x0092:\tDUP3\n" +
	"0x0093:\tDUP3\n" +
	"0x0094:\tPOP\n" +
	"0x0095:\tSLOAD\n" +
	"0x0096:\tADD\n" +
	"0x0097:\tSWAP3\n" +
	"0x0098:\tPOP\n" +
	"0x0099:\tPOP\n" +
	"0x009a:\tDUP2\n" +
	"0x009b:\tSWAP1\n" +
	"0x009c:\tSSTORE\n" +
	"0x009d:\tPOP\n" +
	"0x009e:\tPUSH1\t0x02\n" +
	"0x00a0:\tPUSH1\t0x01\n" +
	"0x00a2:\tPUSH1\t0x00\n" +
	"0x00a4:\tPOP\n" +
	"0x00a5:\tSLOAD\n" +
	"0x00a6:\tGT\n" +
	"0x00a7:\tISZERO\n" +
	"0x00a8:\tISZERO\n" +
	"0x00a9:\tPUSH2\t0x011d\n" +
	"0x00ac:\tJUMPI\n" +
	"0x00ad:\tPUSH1\t0x03\n"

// A name registry program; decodes to the end without hitting an unknown opcode.
const registryProgram = "" +
	"7f72656769737465720000000000000000000000000000000000000000000000" +
	"0060003514156053576020355415603257005b335415603e5760003354555b60" +
	"20353360006000a233602035556020353355005b60007f756e72656769737465" +
	"7200000000000000000000000000000000000000000000600035141560825750" +
	"33545b1560995733335460006000a2600033545560003355005b60007f6b696c" +
	"6c00000000000000000000000000000000000000000000000000000000600035" +
	"141560cb575060455433145b1560d25733ff5b6000355460005260206000f3"
